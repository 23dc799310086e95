package planner

import (
	"errors"
	"testing"

	"github.com/ukydev/wayfarer/internal/models"
)

func validRaw() models.TripRequest {
	return models.TripRequest{
		Destination: "Tokyo",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
		Budget:      1500,
		Style:       models.StyleAdventure,
	}
}

func TestValidateTripRequest_Valid(t *testing.T) {
	req, err := ValidateTripRequest(validRaw(), 500, 10000)
	if err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if req.Destination != "Tokyo" || req.StartDate != "2025-06-01" ||
		req.EndDate != "2025-06-05" || req.Budget != 1500 || req.Style != models.StyleAdventure {
		t.Errorf("fields not preserved: %+v", req)
	}
}

func TestValidateTripRequest_Normalization(t *testing.T) {
	raw := validRaw()
	raw.Destination = "  Kyoto  "
	raw.Style = "ADVENTURE"
	req, err := ValidateTripRequest(raw, 500, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Destination != "Kyoto" {
		t.Errorf("destination not trimmed: %q", req.Destination)
	}
	if req.Style != models.StyleAdventure {
		t.Errorf("style not lowercased: %q", req.Style)
	}

	raw = validRaw()
	raw.Style = ""
	req, err = ValidateTripRequest(raw, 500, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Style != models.StyleBalanced {
		t.Errorf("empty style should default to balanced, got %q", req.Style)
	}
}

func TestValidateTripRequest_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.TripRequest)
		field   string
	}{
		{"empty destination", func(r *models.TripRequest) { r.Destination = "   " }, "destination"},
		{"missing start date", func(r *models.TripRequest) { r.StartDate = "" }, "startDate"},
		{"missing end date", func(r *models.TripRequest) { r.EndDate = "" }, "endDate"},
		{"malformed start date", func(r *models.TripRequest) { r.StartDate = "June 1st" }, "startDate"},
		{"end before start", func(r *models.TripRequest) { r.StartDate = "2025-06-05"; r.EndDate = "2025-06-01" }, "endDate"},
		{"budget below range", func(r *models.TripRequest) { r.Budget = 100 }, "budget"},
		{"budget above range", func(r *models.TripRequest) { r.Budget = 50000 }, "budget"},
		{"unknown style", func(r *models.TripRequest) { r.Style = "luxury" }, "style"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRaw()
			tc.mutate(&raw)
			_, err := ValidateTripRequest(raw, 500, 10000)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}

func TestValidateTripRequest_SameDayTrip(t *testing.T) {
	raw := validRaw()
	raw.EndDate = raw.StartDate
	if _, err := ValidateTripRequest(raw, 500, 10000); err != nil {
		t.Errorf("same-day trip should be valid, got %v", err)
	}
}
