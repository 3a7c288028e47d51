package presenter

import (
	"sync"

	"github.com/boolean-maybe/mycounter/model"
)

// Presenters own a screen's state machine. Views subscribe to the snapshot
// stream and forward user input back as events.

// Event is a discrete input to a presenter
type Event interface {
	EventName() string
}

// State is an immutable snapshot emitted by a presenter
type State interface {
	ScreenKind() model.ScreenKind
}

// Presenter owns the mutable state of one navigation stack entry
type Presenter interface {
	// Present returns the current snapshot
	Present() State

	// Send processes an event synchronously; subscribers see the resulting
	// snapshot before Send returns
	Send(event Event)

	// Subscribe registers a snapshot listener and returns its ID
	Subscribe(listener func(State)) int

	// Unsubscribe removes a snapshot listener
	Unsubscribe(id int)

	// Close drops all listeners; the presenter ignores events afterwards
	Close()
}

// snapshotStream fans snapshots out to subscribers. The zero value is ready to use.
type snapshotStream struct {
	mu           sync.Mutex
	listeners    map[int]func(State)
	order        []int
	lastListener int
	closed       bool
}

// Subscribe registers a listener; listeners are called in subscription order
func (s *snapshotStream) Subscribe(listener func(State)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastListener++
	id := s.lastListener
	if s.closed {
		return id
	}
	if s.listeners == nil {
		s.listeners = make(map[int]func(State))
	}
	s.listeners[id] = listener
	s.order = append(s.order, id)
	return id
}

// Unsubscribe removes a listener; unknown IDs are ignored
func (s *snapshotStream) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listeners[id]; !ok {
		return
	}
	delete(s.listeners, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Close drops every listener
func (s *snapshotStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.listeners = nil
	s.order = nil
}

func (s *snapshotStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// emit delivers a snapshot outside the lock so listeners may call back in
func (s *snapshotStream) emit(state State) {
	s.mu.Lock()
	listeners := make([]func(State), 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}
