package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boolean-maybe/mycounter/model"

	"github.com/gdamore/tcell/v2"
)

// ActionRegistry maps keyboard shortcuts to actions and matches key events.

// ActionID identifies a specific action
type ActionID string

// ActionID values for global actions (available in all views).
const (
	ActionBack ActionID = "back"
	ActionQuit ActionID = "quit"
)

// ActionID values for the home view.
const (
	ActionOpen    ActionID = "open"
	ActionNavUp   ActionID = "nav_up"
	ActionNavDown ActionID = "nav_down"
)

// ActionID values for the counter view.
const (
	ActionIncrement ActionID = "increment"
)

const rowActionPrefix = "row:"

// RowActionID returns the action that opens the given home row directly
func RowActionID(row int) ActionID {
	return ActionID(fmt.Sprintf("%s%d", rowActionPrefix, row))
}

// GetRowFromAction extracts the row from a row action ID
func GetRowFromAction(id ActionID) (int, bool) {
	s := string(id)
	if !strings.HasPrefix(s, rowActionPrefix) {
		return 0, false
	}
	row, err := strconv.Atoi(strings.TrimPrefix(s, rowActionPrefix))
	if err != nil || row < 0 {
		return 0, false
	}
	return row, true
}

// Action represents a keyboard shortcut binding
type Action struct {
	ID           ActionID
	Key          tcell.Key
	Rune         rune // for letter keys (when Key == tcell.KeyRune)
	Label        string
	Modifier     tcell.ModMask
	ShowInHeader bool // whether to display in the help bar
}

// KeyLabel returns the printable key for help display
func (a Action) KeyLabel() string {
	if a.Key == tcell.KeyRune {
		return string(a.Rune)
	}
	switch a.Key {
	case tcell.KeyEscape:
		return "Esc"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyUp:
		return "↑"
	case tcell.KeyDown:
		return "↓"
	}
	return tcell.KeyNames[a.Key]
}

// ActionRegistry holds the available actions for a view.
// actions keeps registration order for the help bar; byKey/byRune give O(1) lookup.
type ActionRegistry struct {
	actions []Action
	byKey   map[tcell.Key]Action
	byRune  map[rune]Action
}

// NewActionRegistry creates a new action registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]Action, 0),
		byKey:   make(map[tcell.Key]Action),
		byRune:  make(map[rune]Action),
	}
}

// Register adds an action to the registry
func (r *ActionRegistry) Register(action Action) {
	r.actions = append(r.actions, action)
	if action.Key == tcell.KeyRune {
		r.byRune[action.Rune] = action
	} else {
		r.byKey[action.Key] = action
	}
}

// Merge adds all actions from another registry into this one.
// If there are key conflicts, the other registry's actions take precedence.
func (r *ActionRegistry) Merge(other *ActionRegistry) {
	for _, action := range other.actions {
		r.Register(action)
	}
}

// GetActions returns all registered actions
func (r *ActionRegistry) GetActions() []Action {
	return r.actions
}

// Match finds an action matching the given key event
func (r *ActionRegistry) Match(event *tcell.EventKey) *Action {
	// ignore caps lock, num lock, etc.
	mod := event.Modifiers() & (tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta)

	if event.Key() == tcell.KeyRune {
		action, ok := r.byRune[event.Rune()]
		if !ok {
			return nil
		}
		// explicit modifiers require an exact match
		if action.Modifier != 0 && action.Modifier != mod {
			return nil
		}
		return &action
	}

	action, ok := r.byKey[event.Key()]
	if !ok || action.Modifier != mod {
		return nil
	}
	return &action
}

// GetHeaderActions returns only actions marked for help bar display
func (r *ActionRegistry) GetHeaderActions() []Action {
	var result []Action
	for _, a := range r.actions {
		if a.ShowInHeader {
			result = append(result, a)
		}
	}
	return result
}

// DefaultGlobalActions returns common actions available in all views
func DefaultGlobalActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionBack, Key: tcell.KeyEscape, Label: "Back", ShowInHeader: true})
	r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit", ShowInHeader: true})
	return r
}

// HomeViewActions returns the canonical action registry for the home view.
// Arrow keys are left to the list primitive; j/k mirror them.
func HomeViewActions() *ActionRegistry {
	r := NewActionRegistry()

	r.Register(Action{ID: ActionOpen, Key: tcell.KeyEnter, Label: "Open", ShowInHeader: true})
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyRune, Rune: 'k', Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyRune, Rune: 'j', Label: "↓"})
	for row := range model.HomeRowCount {
		r.Register(Action{
			ID:    RowActionID(row),
			Key:   tcell.KeyRune,
			Rune:  rune('0' + row),
			Label: model.CounterTitle(row),
		})
	}

	return r
}

// CounterViewActions returns the canonical action registry for the counter view
func CounterViewActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionIncrement, Key: tcell.KeyEnter, Label: "Increment", ShowInHeader: true})
	r.Register(Action{ID: ActionIncrement, Key: tcell.KeyRune, Rune: '+', Label: "Increment"})
	return r
}
