package controller

import (
	"errors"

	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"
)

// ErrEmptyStack is returned when a pop would remove the root entry
var ErrEmptyStack = errors.New("navigation stack would become empty")

// ViewEntry is one navigation stack entry. Each entry owns its presenter,
// so pushing the same screen twice yields two independent states.
type ViewEntry struct {
	Key       string
	Screen    model.Screen
	Presenter presenter.Presenter
}

// backStack is the ordered navigation history; the last entry is on screen
type backStack struct {
	entries []*ViewEntry
}

func newBackStack() *backStack {
	return &backStack{}
}

func (s *backStack) push(entry *ViewEntry) {
	s.entries = append(s.entries, entry)
}

// pop removes and returns the top entry, or nil if the stack is empty
func (s *backStack) pop() *ViewEntry {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// replaceTop swaps the top entry and returns the old one; false on an empty stack
func (s *backStack) replaceTop(entry *ViewEntry) (*ViewEntry, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	old := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = entry
	return old, true
}

func (s *backStack) currentView() *ViewEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

func (s *backStack) currentScreen() model.Screen {
	if top := s.currentView(); top != nil {
		return top.Screen
	}
	return nil
}

func (s *backStack) canGoBack() bool {
	return len(s.entries) > 1
}

func (s *backStack) depth() int {
	return len(s.entries)
}

// clear empties the stack and returns the removed entries, bottom first
func (s *backStack) clear() []*ViewEntry {
	removed := s.entries
	s.entries = nil
	return removed
}

func (s *backStack) screens() []model.Screen {
	out := make([]model.Screen, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Screen
	}
	return out
}

// find returns the entry with the given key, searching from the top
func (s *backStack) find(key string) *ViewEntry {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Key == key {
			return s.entries[i]
		}
	}
	return nil
}
