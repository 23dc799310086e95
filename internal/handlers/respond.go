package handlers

import (
	"encoding/json"
	"net/http"
)

// M is a convenience alias for ad-hoc JSON responses.
type M map[string]interface{}

// RespondWithJSON writes data as a JSON response.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithError writes a JSON error body.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, M{"error": msg})
}
