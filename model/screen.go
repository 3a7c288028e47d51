package model

import "fmt"

// ScreenKind identifies a screen variant
type ScreenKind string

// screen kinds
const (
	HomeScreenKind    ScreenKind = "home"
	CounterScreenKind ScreenKind = "counter"
)

// Screen identifies a navigable destination. Implementations are plain values
// so two identifiers with equal payloads compare equal with ==.
type Screen interface {
	Kind() ScreenKind
}

// HomeScreen is the root screen listing the counters
type HomeScreen struct{}

// Kind returns HomeScreenKind
func (HomeScreen) Kind() ScreenKind { return HomeScreenKind }

// CounterScreen shows a single counter with a display title
type CounterScreen struct {
	Title string
}

// Kind returns CounterScreenKind
func (CounterScreen) Kind() ScreenKind { return CounterScreenKind }

// HomeRowCount is the number of counter rows offered by the home screen
const HomeRowCount = 5

// CounterTitle returns the title used for the counter at the given home row
func CounterTitle(row int) string {
	return fmt.Sprintf("Counter %d", row)
}

// ScreenName returns a short human readable name for logs
func ScreenName(s Screen) string {
	switch sc := s.(type) {
	case nil:
		return "<nil>"
	case CounterScreen:
		return fmt.Sprintf("%s(%q)", sc.Kind(), sc.Title)
	default:
		return string(s.Kind())
	}
}
