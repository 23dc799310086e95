package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ukydev/wayfarer/internal/models"
	"github.com/ukydev/wayfarer/internal/store"
)

// TripsHandler serves the saved-trips collection.
type TripsHandler struct {
	Store store.Store
}

// NewTripsHandler creates a trips handler.
func NewTripsHandler(st store.Store) *TripsHandler {
	return &TripsHandler{Store: st}
}

// List handles GET /api/trips.
func (h *TripsHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	trips, err := h.Store.List(r.Context())
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Error fetching saved trips")
		return
	}
	if trips == nil {
		trips = []models.Itinerary{}
	}
	RespondWithJSON(w, http.StatusOK, trips)
}

// Create handles POST /api/trips: saving an itinerary directly, e.g.
// one re-imported from the saved-trips page.
func (h *TripsHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var it models.Itinerary
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if it.ID == "" {
		RespondWithError(w, http.StatusBadRequest, "Itinerary id is required")
		return
	}

	if err := h.Store.Add(r.Context(), it); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Error saving trip")
		return
	}
	RespondWithJSON(w, http.StatusCreated, it)
}

// Delete handles DELETE /api/trips/:id. Unknown ids succeed, matching
// the store's no-op contract.
func (h *TripsHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.Store.Remove(r.Context(), ps.ByName("id")); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "Error deleting trip")
		return
	}
	RespondWithJSON(w, http.StatusOK, M{"message": "Trip deleted"})
}
