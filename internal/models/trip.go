package models

// TripStyle represents the requested trip vibe.
type TripStyle string

const (
	StyleBalanced  TripStyle = "balanced"
	StyleAdventure TripStyle = "adventure"
	StyleCulture   TripStyle = "culture"
	StyleRelaxing  TripStyle = "relaxing"
	StyleCity      TripStyle = "city"
	StyleFamily    TripStyle = "family"
)

// IsValidStyle reports whether s is one of the supported trip styles.
func IsValidStyle(s TripStyle) bool {
	switch s {
	case StyleBalanced, StyleAdventure, StyleCulture, StyleRelaxing, StyleCity, StyleFamily:
		return true
	}
	return false
}

// TripRequest is the validated planning input that triggers one
// generation run. Dates are calendar days in YYYY-MM-DD form. The
// request is ephemeral: built on submit, dropped once an itinerary
// exists or validation fails.
type TripRequest struct {
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Budget      float64   `json:"budget"`
	Style       TripStyle `json:"style"`
}
