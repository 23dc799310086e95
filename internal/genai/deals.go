package genai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ukydev/wayfarer/internal/models"
)

// NothingFoundFallback replaces an empty deals narrative before it is
// surfaced to the user.
const NothingFoundFallback = "Couldn't find any live deals right now. Try again in a bit."

const dealsPrompt = `Search the web for current flight and hotel deals for a trip to %s between %s and %s on a budget of about $%.0f.
Summarize the best options with prices, like a quick message to a friend, and include links where you have them.`

// SearchDeals runs a grounded web search for real-world prices matching
// an existing itinerary. The result is free text plus citations and is
// never merged into the itinerary itself.
func (c *Client) SearchDeals(ctx context.Context, q models.DealsQuery) (*models.DealsResult, error) {
	prompt := fmt.Sprintf(dealsPrompt, q.Destination, q.StartDate, q.EndDate, q.Budget)

	resp, err := c.generate(ctx, c.dealsModel, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	})
	if err != nil {
		return nil, &SearchError{Err: err}
	}

	text := strings.TrimSpace(resp.text())
	if text == "" {
		text = NothingFoundFallback
	}

	sources := resp.sources()
	if sources == nil {
		sources = []models.GroundingSource{}
	}

	return &models.DealsResult{Text: text, Sources: sources}, nil
}
