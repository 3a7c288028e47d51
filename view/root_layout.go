package view

import (
	"log/slog"

	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/view/header"

	"github.com/rivo/tview"
)

// RootLayout is a container view managing a persistent help bar and a swappable content area.
// It observes LayoutModel for content changes and asks the ViewFactory for the new entry's view.
type RootLayout struct {
	root        *tview.Flex
	helpBar     *header.ContextHelpWidget
	contentArea *tview.Flex

	layoutModel *model.LayoutModel
	viewFactory controller.ViewFactory
	lookupEntry func(key string) *controller.ViewEntry
	canGoBack   func() bool

	contentView      controller.View
	contentKey       string
	layoutListenerID int
	app              *tview.Application
	onViewActivated  func(controller.View)
}

// NewRootLayout creates a root layout that observes the layout model.
// lookupEntry resolves the entry key published in the model; canGoBack drives the Back hint.
func NewRootLayout(
	layoutModel *model.LayoutModel,
	viewFactory controller.ViewFactory,
	lookupEntry func(key string) *controller.ViewEntry,
	canGoBack func() bool,
	app *tview.Application,
) *RootLayout {
	rl := &RootLayout{
		root:        tview.NewFlex().SetDirection(tview.FlexRow),
		helpBar:     header.NewContextHelpWidget(),
		contentArea: tview.NewFlex().SetDirection(tview.FlexRow),
		layoutModel: layoutModel,
		viewFactory: viewFactory,
		lookupEntry: lookupEntry,
		canGoBack:   canGoBack,
		app:         app,
	}

	rl.layoutListenerID = layoutModel.AddListener(rl.onLayoutChange)

	rl.root.AddItem(rl.contentArea, 0, 1, true)
	rl.root.AddItem(rl.helpBar, header.HeaderHeight, 0, false)

	return rl
}

// SetOnViewActivated registers a callback that runs when any view becomes active
func (rl *RootLayout) SetOnViewActivated(callback func(controller.View)) {
	rl.onViewActivated = callback
}

// onLayoutChange is called when LayoutModel changes (content change or Touch)
func (rl *RootLayout) onLayoutChange() {
	key := rl.layoutModel.GetContentKey()

	// Touch only: keep the existing view, refresh the help bar
	if rl.contentView != nil && key == rl.contentKey {
		rl.refreshHelp()
		return
	}

	entry := rl.lookupEntry(key)
	if entry == nil {
		slog.Error("layout points at unknown stack entry", "key", key)
		return
	}

	if rl.contentView != nil {
		rl.contentView.OnBlur()
	}

	// RootLayout creates the view (View layer responsibility)
	newView := rl.viewFactory.CreateView(entry)
	if newView == nil {
		slog.Error("failed to create view", "screen", model.ScreenName(entry.Screen))
		rl.contentView = nil
		rl.contentKey = ""
		rl.contentArea.Clear()
		return
	}

	rl.contentArea.Clear()
	rl.contentArea.AddItem(newView.GetPrimitive(), 0, 1, true)
	rl.contentView = newView
	rl.contentKey = key

	rl.refreshHelp()

	if rl.onViewActivated != nil {
		rl.onViewActivated(newView)
	}

	newView.OnFocus()
	if rl.app != nil {
		rl.app.SetFocus(newView.GetPrimitive())
	}
}

// refreshHelp renders the active view's shortcuts
func (rl *RootLayout) refreshHelp() {
	var actions *controller.ActionRegistry
	if rl.contentView != nil {
		actions = rl.contentView.GetActionRegistry()
	}
	rl.helpBar.SetActions(actions, rl.canGoBack != nil && rl.canGoBack())
}

// GetPrimitive returns the root tview primitive for app.SetRoot()
func (rl *RootLayout) GetPrimitive() tview.Primitive {
	return rl.root
}

// GetActionRegistry delegates to the content view
func (rl *RootLayout) GetActionRegistry() *controller.ActionRegistry {
	if rl.contentView != nil {
		return rl.contentView.GetActionRegistry()
	}
	return controller.NewActionRegistry()
}

// GetScreen delegates to the content view
func (rl *RootLayout) GetScreen() model.Screen {
	if rl.contentView != nil {
		return rl.contentView.GetScreen()
	}
	return nil
}

// GetContentView returns the current content view
func (rl *RootLayout) GetContentView() controller.View {
	return rl.contentView
}

// GetHelpBar returns the help bar widget
func (rl *RootLayout) GetHelpBar() *header.ContextHelpWidget {
	return rl.helpBar
}

// OnFocus delegates to the content view
func (rl *RootLayout) OnFocus() {
	if rl.contentView != nil {
		rl.contentView.OnFocus()
	}
}

// OnBlur delegates to the content view
func (rl *RootLayout) OnBlur() {
	if rl.contentView != nil {
		rl.contentView.OnBlur()
	}
}

// Cleanup removes all listeners
func (rl *RootLayout) Cleanup() {
	rl.layoutModel.RemoveListener(rl.layoutListenerID)
	if rl.contentView != nil {
		rl.contentView.OnBlur()
	}
}
