package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukydev/wayfarer/internal/models"
)

const countryPrompt = `Write a short, enthusiastic travel guide for %s.
Respond with a single JSON object with exactly these fields:
{"description": string, "bestTimeToVisit": string, "currency": string,
 "cultureTips": [string, string, string],
 "attractions": [six world-famous landmark names as strings]}`

// CountryDetails generates guide content for one country. Callers merge
// the result onto the static reference record; on failure they fall
// back to the static record alone.
func (c *Client) CountryDetails(ctx context.Context, name string) (*models.CountryDetails, error) {
	resp, err := c.generate(ctx, c.itineraryModel, generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: fmt.Sprintf(countryPrompt, name)}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return nil, &GenerationError{Reason: "remote call failed", Err: err}
	}

	raw := strings.TrimSpace(resp.text())
	if raw == "" {
		return nil, &GenerationError{Reason: "empty response"}
	}

	var details models.CountryDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, &GenerationError{Reason: "malformed response", Err: err}
	}
	if details.Description == "" {
		return nil, &GenerationError{Reason: "invalid response", Err: fmt.Errorf("missing description")}
	}

	return &details, nil
}
