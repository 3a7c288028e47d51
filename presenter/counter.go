package presenter

import (
	"log/slog"
	"math"

	"go.uber.org/atomic"

	"github.com/boolean-maybe/mycounter/model"
)

// IncrementEvent adds one to the counter
type IncrementEvent struct{}

// EventName returns "increment"
func (IncrementEvent) EventName() string { return "increment" }

// OtherEvent is accepted by the counter screen's event type but changes nothing
type OtherEvent struct{}

// EventName returns "other"
func (OtherEvent) EventName() string { return "other" }

// CounterState is a counter snapshot
type CounterState struct {
	Title   string
	Counter int
}

// ScreenKind returns CounterScreenKind
func (CounterState) ScreenKind() model.ScreenKind { return model.CounterScreenKind }

const maxCounter = int64(math.MaxInt)

// CounterPresenter holds one counter, starting at zero
type CounterPresenter struct {
	snapshotStream
	title   string
	counter *atomic.Int64
}

// NewCounterPresenter creates a counter presenter for the given title
func NewCounterPresenter(title string) *CounterPresenter {
	return newCounterPresenterAt(title, 0)
}

func newCounterPresenterAt(title string, start int64) *CounterPresenter {
	return &CounterPresenter{
		title:   title,
		counter: atomic.NewInt64(start),
	}
}

// Present returns the current counter snapshot
func (p *CounterPresenter) Present() State {
	return CounterState{Title: p.title, Counter: int(p.counter.Load())}
}

// Send applies an event; only IncrementEvent changes state.
// The counter saturates at math.MaxInt.
func (p *CounterPresenter) Send(event Event) {
	if p.isClosed() {
		slog.Debug("event sent to closed counter presenter", "title", p.title, "event", eventName(event))
		return
	}

	switch event.(type) {
	case IncrementEvent:
		if !p.increment() {
			slog.Warn("counter saturated", "title", p.title, "value", maxCounter)
			return
		}
		p.emit(p.Present())
	default:
		slog.Warn("unknown counter event", "title", p.title, "event", eventName(event))
	}
}

func (p *CounterPresenter) increment() bool {
	for {
		cur := p.counter.Load()
		if cur >= maxCounter {
			return false
		}
		if p.counter.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

func eventName(event Event) string {
	if event == nil {
		return "<nil>"
	}
	return event.EventName()
}
