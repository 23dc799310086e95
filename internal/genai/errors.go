package genai

import "fmt"

// GenerationError reports a failed itinerary or country-details
// generation: transport failure, an empty payload, or a payload that
// does not satisfy the response schema. A partial itinerary is never
// returned alongside one.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// SearchError reports a failed deals lookup. Callers surface a
// user-visible fallback message instead of the raw error.
type SearchError struct {
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("deals search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error { return e.Err }
