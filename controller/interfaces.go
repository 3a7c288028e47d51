package controller

import (
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"

	"github.com/rivo/tview"
)

// View and ViewFactory interfaces decouple controllers from view implementations.

// View represents a renderable view with its action registry
type View interface {
	// GetPrimitive returns the tview primitive for this view
	GetPrimitive() tview.Primitive

	// GetActionRegistry returns the actions available in this view
	GetActionRegistry() *ActionRegistry

	// GetScreen returns the screen this view renders
	GetScreen() model.Screen

	// OnFocus is called when the view becomes active
	OnFocus()

	// OnBlur is called when the view becomes inactive
	OnBlur()
}

// ViewFactory creates views for stack entries
type ViewFactory interface {
	// CreateView instantiates the view for an entry, bound to the entry's presenter
	CreateView(entry *ViewEntry) View
}

// PresenterFactory builds the presenter that will own a new stack entry's state
type PresenterFactory func(screen model.Screen) (presenter.Presenter, error)

// Navigator is the navigation surface handed to views
type Navigator interface {
	// GoTo pushes a screen
	GoTo(screen model.Screen) error

	// Pop returns to the previous screen
	Pop() error
}

// TaggedView exposes stable tags for the regions a test or automation can query
type TaggedView interface {
	View

	// Tags lists every tag the view currently exposes
	Tags() []string

	// TagText returns the text shown by the tagged region
	TagText(tag string) (string, bool)

	// PerformClick activates the tagged control as a mouse click would
	PerformClick(tag string) bool
}

// SelectableView is a view that tracks selection state
type SelectableView interface {
	View

	// GetSelectedID returns the tag of the currently selected item
	GetSelectedID() string

	// SetSelectedID sets the selection to a specific item
	SetSelectedID(id string)

	// MoveSelection moves the selection by delta rows, clamped to the list
	MoveSelection(delta int)
}
