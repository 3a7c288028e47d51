package testutil

import (
	"sync"

	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
)

// FakeNavigator records navigation requests instead of performing them
type FakeNavigator struct {
	mu      sync.Mutex
	pending []model.Screen
	history []model.Screen
	pops    int

	// GoToErr and PopErr are returned by the next calls when set
	GoToErr error
	PopErr  error
}

var _ controller.Navigator = (*FakeNavigator)(nil)

// NewFakeNavigator creates a navigator with no recorded calls
func NewFakeNavigator() *FakeNavigator {
	return &FakeNavigator{}
}

// GoTo records screen
func (n *FakeNavigator) GoTo(screen model.Screen) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.GoToErr != nil {
		return n.GoToErr
	}
	n.pending = append(n.pending, screen)
	n.history = append(n.history, screen)
	return nil
}

// Pop records a pop
func (n *FakeNavigator) Pop() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.PopErr != nil {
		return n.PopErr
	}
	n.pops++
	return nil
}

// NextScreen consumes the oldest GoTo not yet consumed
func (n *FakeNavigator) NextScreen() (model.Screen, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.pending) == 0 {
		return nil, false
	}
	next := n.pending[0]
	n.pending = n.pending[1:]
	return next, true
}

// Screens returns every screen passed to GoTo, oldest first
func (n *FakeNavigator) Screens() []model.Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Screen(nil), n.history...)
}

// PopCount returns how many pops were recorded
func (n *FakeNavigator) PopCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pops
}
