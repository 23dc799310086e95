package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/ukydev/wayfarer/internal/genai"
	"github.com/ukydev/wayfarer/internal/maps"
	"github.com/ukydev/wayfarer/internal/models"
	"github.com/ukydev/wayfarer/internal/planner"
)

// PlannerHandler exposes the planning pipeline over HTTP.
type PlannerHandler struct {
	Planner *planner.Planner
	Widget  *maps.Widget
}

// NewPlannerHandler creates a planner handler.
func NewPlannerHandler(p *planner.Planner, w *maps.Widget) *PlannerHandler {
	return &PlannerHandler{Planner: p, Widget: w}
}

// Plan handles POST /api/plan: validate the form input and run one
// generation request.
func (h *PlannerHandler) Plan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var raw models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	it, err := h.Planner.Generate(r.Context(), raw)
	if err != nil {
		var vErr *planner.ValidationError
		var gErr *genai.GenerationError
		switch {
		case errors.As(err, &vErr):
			RespondWithJSON(w, http.StatusBadRequest, M{"error": vErr.Reason, "field": vErr.Field})
		case errors.Is(err, planner.ErrBusy):
			RespondWithError(w, http.StatusConflict, "An itinerary is already being generated")
		case errors.As(err, &gErr):
			RespondWithError(w, http.StatusBadGateway, "Couldn't build that itinerary. Maybe try a different destination?")
		default:
			RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, it)
}

// Deals handles POST /api/plan/deals: the secondary lookup for the
// active itinerary.
func (h *PlannerHandler) Deals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	result, err := h.Planner.SearchDeals(r.Context())
	if err != nil {
		var sErr *genai.SearchError
		switch {
		case errors.Is(err, planner.ErrNoItinerary):
			RespondWithError(w, http.StatusConflict, "Generate an itinerary before searching deals")
		case errors.Is(err, planner.ErrDealsBusy):
			RespondWithError(w, http.StatusConflict, "A deals search is already running")
		case errors.As(err, &sErr):
			RespondWithError(w, http.StatusBadGateway, "The deals search didn't go through. Try again in a moment.")
		default:
			RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, result)
}

// State handles GET /api/plan: the current orchestrator snapshot.
func (h *PlannerHandler) State(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, h.Planner.Snapshot())
}

// Save handles POST /api/plan/save: persist the active itinerary.
func (h *PlannerHandler) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.Planner.Save(r.Context()); err != nil {
		if errors.Is(err, planner.ErrNoItinerary) {
			RespondWithError(w, http.StatusConflict, "No itinerary to save")
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "Couldn't save that trip. Try saving again.")
		return
	}
	RespondWithJSON(w, http.StatusOK, h.Planner.Snapshot())
}

// View handles POST /api/plan/view: switch between list and map.
func (h *PlannerHandler) View(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Mode planner.ViewMode `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.Planner.SetViewMode(body.Mode); err != nil {
		var vErr *planner.ValidationError
		switch {
		case errors.As(err, &vErr):
			RespondWithError(w, http.StatusBadRequest, vErr.Reason)
		case errors.Is(err, planner.ErrNoItinerary):
			RespondWithError(w, http.StatusConflict, "No itinerary to view")
		default:
			RespondWithError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	RespondWithJSON(w, http.StatusOK, h.Planner.Snapshot())
}

// ClearNotice handles DELETE /api/plan/notice: dismiss the current
// deals/save failure notice.
func (h *PlannerHandler) ClearNotice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Planner.ClearNotice()
	RespondWithJSON(w, http.StatusOK, h.Planner.Snapshot())
}

// MapData handles GET /api/plan/map: the last rendered GeoJSON layer.
func (h *PlannerHandler) MapData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.Widget.Current())
}
