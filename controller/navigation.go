package controller

import (
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/mycounter/model"
)

// NavigationController owns the navigation stack. It creates a presenter for
// every pushed entry, closes it on pop, and reports the new top through
// onViewChanged. It does NOT create views - RootLayout does that by observing
// the LayoutModel.
type NavigationController struct {
	app              *tview.Application
	navState         *backStack
	presenterFactory PresenterFactory
	activeViewGetter func() View
	onViewChanged    func(entry *ViewEntry)
	keySeq           int
}

// NewNavigationController creates a navigation controller with an empty stack
func NewNavigationController(app *tview.Application) *NavigationController {
	return &NavigationController{
		app:      app,
		navState: newBackStack(),
	}
}

// SetPresenterFactory sets the function that builds presenters for pushed screens
func (nc *NavigationController) SetPresenterFactory(factory PresenterFactory) {
	nc.presenterFactory = factory
}

// SetActiveViewGetter sets the function to retrieve the currently displayed view
func (nc *NavigationController) SetActiveViewGetter(getter func() View) {
	nc.activeViewGetter = getter
}

// SetOnViewChanged registers a callback that runs when the top of the stack changes
func (nc *NavigationController) SetOnViewChanged(callback func(entry *ViewEntry)) {
	nc.onViewChanged = callback
}

// GoTo pushes a screen; it is the Navigator entry point used by views
func (nc *NavigationController) GoTo(screen model.Screen) error {
	return nc.PushView(screen)
}

// Pop removes the top screen; it is the Navigator entry point used by views
func (nc *NavigationController) Pop() error {
	return nc.PopView()
}

// PushView navigates to a new screen, adding it to the stack
func (nc *NavigationController) PushView(screen model.Screen) error {
	entry, err := nc.newEntry(screen)
	if err != nil {
		return err
	}
	nc.navState.push(entry)
	slog.Debug("pushed screen", "screen", model.ScreenName(screen), "key", entry.Key, "depth", nc.navState.depth())

	nc.notifyViewChanged(entry)
	return nil
}

// ReplaceView swaps the top screen for a new one, keeping the stack depth
func (nc *NavigationController) ReplaceView(screen model.Screen) error {
	if nc.navState.depth() == 0 {
		return ErrEmptyStack
	}
	entry, err := nc.newEntry(screen)
	if err != nil {
		return err
	}
	old, _ := nc.navState.replaceTop(entry)
	closeEntry(old)

	nc.notifyViewChanged(entry)
	return nil
}

// PopView returns to the previous screen and discards the popped entry's state.
// The root entry is never popped: ErrEmptyStack is returned and the stack is left as is.
func (nc *NavigationController) PopView() error {
	if !nc.navState.canGoBack() {
		return ErrEmptyStack
	}

	popped := nc.navState.pop()
	closeEntry(popped)
	slog.Debug("popped screen", "screen", model.ScreenName(popped.Screen), "depth", nc.navState.depth())

	nc.notifyViewChanged(nc.navState.currentView())
	return nil
}

// CanGoBack reports whether a pop would succeed
func (nc *NavigationController) CanGoBack() bool {
	return nc.navState.canGoBack()
}

// GetActiveView returns the currently displayed view (from RootLayout)
func (nc *NavigationController) GetActiveView() View {
	if nc.activeViewGetter != nil {
		return nc.activeViewGetter()
	}
	return nil
}

// CurrentView returns the top stack entry
func (nc *NavigationController) CurrentView() *ViewEntry {
	return nc.navState.currentView()
}

// FindView returns the stack entry with the given key, or nil if it was popped
func (nc *NavigationController) FindView(key string) *ViewEntry {
	return nc.navState.find(key)
}

// CurrentScreen returns the screen on top of the stack
func (nc *NavigationController) CurrentScreen() model.Screen {
	return nc.navState.currentScreen()
}

// Screens returns the stack contents, bottom first
func (nc *NavigationController) Screens() []model.Screen {
	return nc.navState.screens()
}

// Depth returns the current stack depth
func (nc *NavigationController) Depth() int {
	return nc.navState.depth()
}

// Snapshot returns the stack in its serializable form, bottom first
func (nc *NavigationController) Snapshot() ([]model.ScreenRecord, error) {
	records, err := model.EncodeScreens(nc.navState.screens())
	if err != nil {
		return nil, fmt.Errorf("snapshot navigation stack: %w", err)
	}
	return records, nil
}

// Restore replaces the whole stack with previously saved records.
// Restored entries get fresh presenters; nothing changes if any record is invalid.
func (nc *NavigationController) Restore(records []model.ScreenRecord) error {
	if len(records) == 0 {
		return fmt.Errorf("restore navigation stack: %w", ErrEmptyStack)
	}
	screens, err := model.DecodeScreens(records)
	if err != nil {
		return fmt.Errorf("restore navigation stack: %w", err)
	}

	entries := make([]*ViewEntry, 0, len(screens))
	for _, s := range screens {
		entry, err := nc.newEntry(s)
		if err != nil {
			for _, e := range entries {
				closeEntry(e)
			}
			return fmt.Errorf("restore navigation stack: %w", err)
		}
		entries = append(entries, entry)
	}

	for _, old := range nc.navState.clear() {
		closeEntry(old)
	}
	for _, e := range entries {
		nc.navState.push(e)
	}
	slog.Debug("restored navigation stack", "depth", nc.navState.depth())

	nc.notifyViewChanged(nc.navState.currentView())
	return nil
}

// GetApp returns the tview application
func (nc *NavigationController) GetApp() *tview.Application {
	return nc.app
}

// HandleBack processes the back/escape action
func (nc *NavigationController) HandleBack() bool {
	if err := nc.PopView(); err != nil {
		slog.Debug("back ignored", "error", err)
		return false
	}
	return true
}

// HandleQuit stops the application
func (nc *NavigationController) HandleQuit() {
	if nc.app != nil {
		nc.app.Stop()
	}
}

func (nc *NavigationController) newEntry(screen model.Screen) (*ViewEntry, error) {
	if screen == nil {
		return nil, fmt.Errorf("navigate: %w", model.ErrUnknownScreenKind)
	}
	entry := &ViewEntry{Key: nc.nextKey(), Screen: screen}
	if nc.presenterFactory != nil {
		p, err := nc.presenterFactory(screen)
		if err != nil {
			return nil, fmt.Errorf("navigate to %s: %w", model.ScreenName(screen), err)
		}
		entry.Presenter = p
	}
	return entry, nil
}

// nextKey generates a unique stack entry key
func (nc *NavigationController) nextKey() string {
	nc.keySeq++
	id, err := gonanoid.New(12)
	if err != nil {
		// sequence keeps keys unique even without randomness
		return fmt.Sprintf("entry-%d", nc.keySeq)
	}
	return fmt.Sprintf("%s-%d", id, nc.keySeq)
}

func (nc *NavigationController) notifyViewChanged(entry *ViewEntry) {
	if entry != nil && nc.onViewChanged != nil {
		nc.onViewChanged(entry)
	}
}

func closeEntry(entry *ViewEntry) {
	if entry != nil && entry.Presenter != nil {
		entry.Presenter.Close()
	}
}
