package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/wayfarer/internal/models"
)

type stubDetails struct {
	details *models.CountryDetails
	err     error
}

func (s *stubDetails) CountryDetails(ctx context.Context, name string) (*models.CountryDetails, error) {
	return s.details, s.err
}

func TestCountries_List(t *testing.T) {
	h := NewCountriesHandler(nil)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/countries?continent=Asia", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Equal(t, "Asia", c.Continent)
	}
}

func TestCountries_GetWithDetails(t *testing.T) {
	h := NewCountriesHandler(&stubDetails{details: &models.CountryDetails{
		Description: "Lively and beautiful",
		Currency:    "JPY",
	}})

	w := httptest.NewRecorder()
	params := httprouter.Params{{Key: "name", Value: "japan"}}
	h.Get(w, httptest.NewRequest(http.MethodGet, "/api/countries/japan", nil), params)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Japan", got.Name)
	assert.Equal(t, "JPY", got.Currency)
	assert.Equal(t, "Lively and beautiful", got.Description)
}

func TestCountries_GetFallsBackToStatic(t *testing.T) {
	h := NewCountriesHandler(&stubDetails{err: errors.New("upstream down")})

	w := httptest.NewRecorder()
	params := httprouter.Params{{Key: "name", Value: "Japan"}}
	h.Get(w, httptest.NewRequest(http.MethodGet, "/api/countries/Japan", nil), params)

	require.Equal(t, http.StatusOK, w.Code, "details failure must not fail the page")
	var got models.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "JP", got.Code)
	assert.Empty(t, got.Description)
}

func TestCountries_GetUnknown(t *testing.T) {
	h := NewCountriesHandler(nil)

	w := httptest.NewRecorder()
	params := httprouter.Params{{Key: "name", Value: "Atlantis"}}
	h.Get(w, httptest.NewRequest(http.MethodGet, "/api/countries/Atlantis", nil), params)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
