package controller

import (
	"log/slog"

	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"

	"github.com/gdamore/tcell/v2"
)

// InputRouter dispatches key events. It doesn't know what an action does to a
// screen's state - it only knows where to send it: global actions go to the
// navigation controller, view actions go to the active view or the entry's presenter.
type InputRouter struct {
	navController *NavigationController
	globalActions *ActionRegistry
}

// NewInputRouter creates an input router
func NewInputRouter(navController *NavigationController) *InputRouter {
	return &InputRouter{
		navController: navController,
		globalActions: DefaultGlobalActions(),
	}
}

// HandleInput processes a key event for the current stack entry.
// Global actions are checked first, then the active view's actions.
// Returns true if the event was handled; unhandled events go to the focused primitive.
func (ir *InputRouter) HandleInput(event *tcell.EventKey, currentView *ViewEntry) bool {
	slog.Debug("input received", "name", event.Name(), "key", int(event.Key()), "rune", string(event.Rune()), "modifiers", int(event.Modifiers()))

	if currentView == nil {
		return false
	}

	if action := ir.globalActions.Match(event); action != nil {
		return ir.handleGlobalAction(action.ID)
	}

	activeView := ir.navController.GetActiveView()
	if activeView == nil {
		return false
	}
	action := activeView.GetActionRegistry().Match(event)
	if action == nil {
		return false
	}

	switch currentView.Screen.(type) {
	case model.HomeScreen:
		return ir.handleHomeAction(activeView, action.ID)
	case model.CounterScreen:
		return ir.handleCounterAction(currentView, action.ID)
	default:
		slog.Warn("no input handling for screen", "screen", model.ScreenName(currentView.Screen))
		return false
	}
}

// handleGlobalAction processes actions available in all views
func (ir *InputRouter) handleGlobalAction(actionID ActionID) bool {
	switch actionID {
	case ActionBack:
		// consume Esc on the root screen too so it never reaches the primitive
		ir.navController.HandleBack()
		return true
	case ActionQuit:
		ir.navController.HandleQuit()
		return true
	default:
		return false
	}
}

// handleHomeAction routes home list actions to the view's row controls
func (ir *InputRouter) handleHomeAction(activeView View, actionID ActionID) bool {
	if row, ok := GetRowFromAction(actionID); ok {
		return clickTag(activeView, model.CounterTitle(row))
	}

	selectable, ok := activeView.(SelectableView)
	if !ok {
		return false
	}
	switch actionID {
	case ActionOpen:
		return clickTag(activeView, selectable.GetSelectedID())
	case ActionNavUp:
		selectable.MoveSelection(-1)
		return true
	case ActionNavDown:
		selectable.MoveSelection(1)
		return true
	default:
		return false
	}
}

// handleCounterAction sends counter events to the entry's presenter
func (ir *InputRouter) handleCounterAction(entry *ViewEntry, actionID ActionID) bool {
	if entry.Presenter == nil {
		slog.Error("counter entry has no presenter", "key", entry.Key)
		return false
	}
	switch actionID {
	case ActionIncrement:
		entry.Presenter.Send(presenter.IncrementEvent{})
		return true
	default:
		return false
	}
}

func clickTag(v View, tag string) bool {
	tagged, ok := v.(TaggedView)
	if !ok || tag == "" {
		return false
	}
	return tagged.PerformClick(tag)
}
