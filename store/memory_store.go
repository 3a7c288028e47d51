package store

import (
	"fmt"
	"maps"
	"sync"

	"github.com/boolean-maybe/mycounter/model"
)

// InMemoryStore is an in-memory BackStackStore.
// Useful for testing and as a reference implementation.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []model.ScreenRecord
	saves   int
}

// NewInMemoryStore creates an empty in-memory store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Load returns a copy of the saved records
func (s *InMemoryStore) Load() ([]model.ScreenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.records) == 0 {
		return nil, ErrNoSavedStack
	}
	return copyRecords(s.records), nil
}

// Save stores a copy of records
func (s *InMemoryStore) Save(records []model.ScreenRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("save navigation stack: %w", ErrNoSavedStack)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = copyRecords(records)
	s.saves++
	return nil
}

// Clear drops the saved records
func (s *InMemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

// SaveCount returns how many times Save succeeded
func (s *InMemoryStore) SaveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func copyRecords(records []model.ScreenRecord) []model.ScreenRecord {
	out := make([]model.ScreenRecord, len(records))
	for i, r := range records {
		out[i] = model.ScreenRecord{Kind: r.Kind}
		if r.Params != nil {
			out[i].Params = maps.Clone(r.Params)
		}
	}
	return out
}
