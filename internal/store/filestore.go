package store

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/ukydev/wayfarer/internal/models"
)

// FileStore keeps the whole collection in one JSON file and rewrites it
// wholesale on every mutation. A missing or unreadable file is treated
// as an empty collection, never as an error. Writers in separate
// processes are last-writer-wins; that is an accepted limitation of the
// single-slot design, not something this store guards against.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at path. The file is created
// lazily on the first Add.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() []models.Itinerary {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Itinerary{}
	}
	var trips []models.Itinerary
	if err := json.Unmarshal(data, &trips); err != nil {
		return []models.Itinerary{}
	}
	return trips
}

func (s *FileStore) save(trips []models.Itinerary) error {
	data, err := json.Marshal(trips)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// List returns the saved itineraries in insertion order.
func (s *FileStore) List(ctx context.Context) ([]models.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// Add appends an itinerary and rewrites the collection.
func (s *FileStore) Add(ctx context.Context, it models.Itinerary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := append(s.load(), it)
	if err := s.save(trips); err != nil {
		return &StorageError{Op: "add", Err: err}
	}
	return nil
}

// Remove filters the collection by id. Removing an id that is not
// present leaves the stored collection unchanged.
func (s *FileStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := s.load()
	kept := trips[:0]
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return nil
	}
	if err := s.save(kept); err != nil {
		return &StorageError{Op: "remove", Err: err}
	}
	return nil
}
