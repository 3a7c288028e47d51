package testutil

import (
	"sync"
	"testing"

	"github.com/boolean-maybe/mycounter/presenter"
)

// StateRecorder collects the snapshots a presenter emits.
// The current snapshot is recorded on subscription, so the first AwaitItem
// returns the initial state.
type StateRecorder struct {
	t         *testing.T
	presenter presenter.Presenter
	id        int

	mu    sync.Mutex
	items []presenter.State
	next  int
}

// RecordStates subscribes to p until the test ends
func RecordStates(t *testing.T, p presenter.Presenter) *StateRecorder {
	t.Helper()
	r := &StateRecorder{t: t, presenter: p}
	r.items = append(r.items, p.Present())
	r.id = p.Subscribe(r.record)
	t.Cleanup(r.Stop)
	return r
}

func (r *StateRecorder) record(s presenter.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, s)
}

// AwaitItem returns the next unread snapshot. Emission is synchronous, so a
// missing snapshot fails the test immediately.
func (r *StateRecorder) AwaitItem() presenter.State {
	r.t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.next >= len(r.items) {
		r.t.Fatalf("no snapshot emitted after %d items", len(r.items))
		return nil
	}
	item := r.items[r.next]
	r.next++
	return item
}

// ExpectNoEvents fails the test if unread snapshots remain
func (r *StateRecorder) ExpectNoEvents() {
	r.t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.next < len(r.items) {
		r.t.Errorf("unexpected snapshots: %v", r.items[r.next:])
	}
}

// Items returns every recorded snapshot
func (r *StateRecorder) Items() []presenter.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]presenter.State(nil), r.items...)
}

// Stop unsubscribes from the presenter
func (r *StateRecorder) Stop() {
	if r.id != 0 {
		r.presenter.Unsubscribe(r.id)
		r.id = 0
	}
}
