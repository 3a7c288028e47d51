package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/boolean-maybe/mycounter/model"

	"gopkg.in/yaml.v3"
)

// backStackFileVersion is bumped when the file layout changes
const backStackFileVersion = 1

// ErrUnsupportedVersion is returned for back stack files written by a newer layout
var ErrUnsupportedVersion = errors.New("unsupported back stack file version")

// backStackFile is the on-disk YAML layout
type backStackFile struct {
	Version int                  `yaml:"version"`
	SavedAt time.Time            `yaml:"savedAt"`
	Screens []model.ScreenRecord `yaml:"screens"`
}

// FileStore keeps the navigation stack in a YAML file
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the saved stack from disk
func (s *FileStore) Load() ([]model.ScreenRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSavedStack
		}
		return nil, fmt.Errorf("read back stack: %w", err)
	}

	var f backStackFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse back stack %s: %w", s.path, err)
	}
	if f.Version > backStackFileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if len(f.Screens) == 0 {
		return nil, ErrNoSavedStack
	}

	slog.Debug("loaded back stack", "file", s.path, "depth", len(f.Screens), "savedAt", f.SavedAt)
	return f.Screens, nil
}

// Save writes the stack to disk, replacing any previous file
func (s *FileStore) Save(records []model.ScreenRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("save back stack: %w", ErrNoSavedStack)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(backStackFile{
		Version: backStackFileVersion,
		SavedAt: s.now().UTC(),
		Screens: records,
	})
	if err != nil {
		return fmt.Errorf("marshal back stack: %w", err)
	}

	//nolint:gosec // G301: 0755 is appropriate for cache directory
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create back stack directory: %w", err)
	}

	// write to a sibling temp file so a crash never leaves a truncated stack
	tmp := s.path + ".tmp"
	//nolint:gosec // G306: 0644 is appropriate for cache file
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write back stack: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace back stack: %w", err)
	}

	slog.Debug("saved back stack", "file", s.path, "depth", len(records))
	return nil
}

// Clear deletes the saved stack file
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove back stack: %w", err)
	}
	return nil
}
