package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ukydev/wayfarer/internal/models"
)

const itineraryPrompt = `Plan a trip to %s from %s to %s with a budget around $%.0f and a "%s" travel style.
Produce a day-by-day plan plus one suggested flight (airline, flight number, times, duration, price).
Write activity descriptions like a traveler sharing advice with a friend.
Respond with a single JSON object with exactly these fields:
{"destination": string,
 "dailyPlans": [{"day": int, "title": string,
   "activities": [{"time": string, "title": string, "description": string, "cost": number,
     "location": {"lat": number, "lng": number}}]}],
 "suggestedFlight": {"airline": string, "flightNumber": string, "departureTime": string,
   "arrivalTime": string, "duration": string, "price": number},
 "totalEstimatedCost": number}
Day numbers must start at 1 and be consecutive. Omit "location" for activities without a precise spot.`

// itineraryPayload is the portion of the itinerary the remote
// collaborator is trusted for. Everything else is filled in locally.
type itineraryPayload struct {
	Destination        string           `json:"destination"`
	DailyPlans         []models.DayPlan `json:"dailyPlans"`
	SuggestedFlight    *models.Flight   `json:"suggestedFlight"`
	TotalEstimatedCost float64          `json:"totalEstimatedCost"`
}

// GenerateItinerary asks the remote collaborator for a full trip plan
// and merges it with the originating request. The returned itinerary
// carries a freshly generated id and the request's dates, budget and
// style even if the payload echoes different values. Repeating the same
// request yields a different, equally valid itinerary; nothing is
// cached or deduplicated.
func (c *Client) GenerateItinerary(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
	prompt := fmt.Sprintf(itineraryPrompt,
		req.Destination, req.StartDate, req.EndDate, req.Budget, req.Style)

	resp, err := c.generate(ctx, c.itineraryModel, generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return nil, &GenerationError{Reason: "remote call failed", Err: err}
	}

	raw := strings.TrimSpace(resp.text())
	if raw == "" {
		return nil, &GenerationError{Reason: "empty response"}
	}

	var payload itineraryPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &GenerationError{Reason: "malformed response", Err: err}
	}
	if err := validateItineraryPayload(&payload); err != nil {
		return nil, &GenerationError{Reason: "invalid response", Err: err}
	}

	destination := payload.Destination
	if destination == "" {
		destination = req.Destination
	}

	return &models.Itinerary{
		ID:                 uuid.NewString(),
		Destination:        destination,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Budget:             req.Budget,
		Style:              string(req.Style),
		DailyPlans:         payload.DailyPlans,
		SuggestedFlight:    payload.SuggestedFlight,
		TotalEstimatedCost: payload.TotalEstimatedCost,
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// validateItineraryPayload enforces the response schema at the
// boundary. A payload that fails here is rejected outright rather than
// patched into a partial itinerary.
func validateItineraryPayload(p *itineraryPayload) error {
	if len(p.DailyPlans) == 0 {
		return fmt.Errorf("no daily plans")
	}
	for i, day := range p.DailyPlans {
		if day.Day != i+1 {
			return fmt.Errorf("day numbers not contiguous: position %d has day %d", i, day.Day)
		}
		for _, act := range day.Activities {
			if act.Title == "" {
				return fmt.Errorf("day %d has an activity without a title", day.Day)
			}
			if act.Cost < 0 {
				return fmt.Errorf("day %d activity %q has negative cost", day.Day, act.Title)
			}
		}
	}
	if p.SuggestedFlight != nil && p.SuggestedFlight.Price < 0 {
		return fmt.Errorf("flight has negative price")
	}
	if p.TotalEstimatedCost < 0 {
		return fmt.Errorf("negative total estimated cost")
	}
	return nil
}
