package models

// WebSource points at the page a grounded deals result was taken from.
type WebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// GroundingSource is one citation attached to a deals result.
type GroundingSource struct {
	Web *WebSource `json:"web,omitempty"`
}

// DealsQuery is the free-text search input for a deals lookup, taken
// from an already-generated itinerary.
type DealsQuery struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
}

// DealsResult is the unstructured outcome of one deals lookup. It is
// regenerated on every search and never merged into the itinerary.
type DealsResult struct {
	Text    string            `json:"text"`
	Sources []GroundingSource `json:"sources"`
}
