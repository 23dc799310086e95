package handlers

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wayfarer/internal/countries"
	"github.com/ukydev/wayfarer/internal/models"
)

// DetailsProvider generates guide content for one country.
type DetailsProvider interface {
	CountryDetails(ctx context.Context, name string) (*models.CountryDetails, error)
}

// CountriesHandler serves the destination reference data.
type CountriesHandler struct {
	Details DetailsProvider
}

// NewCountriesHandler creates a countries handler. A nil provider
// serves static records only.
func NewCountriesHandler(details DetailsProvider) *CountriesHandler {
	return &CountriesHandler{Details: details}
}

// List handles GET /api/countries with optional q and continent
// filters.
func (h *CountriesHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	RespondWithJSON(w, http.StatusOK, countries.Filter(query.Get("q"), query.Get("continent")))
}

// Get handles GET /api/countries/:name. Guide content is generated on
// demand; when that fails the static record is served alone rather
// than failing the page.
func (h *CountriesHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("name")
	country, ok := countries.ByName(name)
	if !ok {
		RespondWithError(w, http.StatusNotFound, "Country not found")
		return
	}

	if h.Details != nil {
		details, err := h.Details.CountryDetails(r.Context(), country.Name)
		if err != nil {
			log.WithError(err).WithField("country", country.Name).Warn("country details generation failed")
		} else {
			country.ApplyDetails(*details)
		}
	}

	RespondWithJSON(w, http.StatusOK, country)
}
