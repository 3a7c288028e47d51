package store

import (
	"errors"

	"github.com/boolean-maybe/mycounter/model"
)

// ErrNoSavedStack is returned by Load when nothing was saved yet
var ErrNoSavedStack = errors.New("no saved navigation stack")

// BackStackStore persists the navigation stack between runs.
// Implementations must be safe for concurrent use.
type BackStackStore interface {
	// Load returns the saved records, bottom first.
	// Returns ErrNoSavedStack when there is nothing to restore.
	Load() ([]model.ScreenRecord, error)

	// Save replaces the saved stack
	Save(records []model.ScreenRecord) error

	// Clear removes the saved stack; clearing an empty store is not an error
	Clear() error
}
