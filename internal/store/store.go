package store

import (
	"context"
	"fmt"

	"github.com/ukydev/wayfarer/internal/models"
)

// Store is the durable collection of saved itineraries. List returns
// entries in insertion order; Remove of an unknown id is a no-op. Id
// distinctness is guaranteed by the generator, so Add never checks for
// duplicates.
type Store interface {
	List(ctx context.Context) ([]models.Itinerary, error)
	Add(ctx context.Context, it models.Itinerary) error
	Remove(ctx context.Context, id string) error
}

// StorageError wraps a failed persistence operation so callers can
// surface a retryable notice.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
