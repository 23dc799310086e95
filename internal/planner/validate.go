package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/ukydev/wayfarer/internal/models"
)

// ValidationError reports a rejected trip request. The failing field is
// carried so the form can show the error next to the right input. No
// remote call is made for a request that fails validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

const dateLayout = "2006-01-02"

// ValidateTripRequest normalizes raw form input into a well-formed
// TripRequest. Destination is trimmed, style lowercased and defaulted
// to balanced when empty. End dates before start dates are rejected.
func ValidateTripRequest(raw models.TripRequest, budgetMin, budgetMax float64) (models.TripRequest, error) {
	req := raw
	req.Destination = strings.TrimSpace(raw.Destination)
	if req.Destination == "" {
		return models.TripRequest{}, &ValidationError{Field: "destination", Reason: "destination is required"}
	}

	if raw.StartDate == "" {
		return models.TripRequest{}, &ValidationError{Field: "startDate", Reason: "start date is required"}
	}
	start, err := time.Parse(dateLayout, raw.StartDate)
	if err != nil {
		return models.TripRequest{}, &ValidationError{Field: "startDate", Reason: "start date must be YYYY-MM-DD"}
	}

	if raw.EndDate == "" {
		return models.TripRequest{}, &ValidationError{Field: "endDate", Reason: "end date is required"}
	}
	end, err := time.Parse(dateLayout, raw.EndDate)
	if err != nil {
		return models.TripRequest{}, &ValidationError{Field: "endDate", Reason: "end date must be YYYY-MM-DD"}
	}

	if end.Before(start) {
		return models.TripRequest{}, &ValidationError{Field: "endDate", Reason: "end date must not precede start date"}
	}

	if raw.Budget < budgetMin || raw.Budget > budgetMax {
		return models.TripRequest{}, &ValidationError{
			Field:  "budget",
			Reason: fmt.Sprintf("budget must be between %.0f and %.0f", budgetMin, budgetMax),
		}
	}

	req.Style = models.TripStyle(strings.ToLower(string(raw.Style)))
	if req.Style == "" {
		req.Style = models.StyleBalanced
	}
	if !models.IsValidStyle(req.Style) {
		return models.TripRequest{}, &ValidationError{Field: "style", Reason: "unknown trip style"}
	}

	return req, nil
}
