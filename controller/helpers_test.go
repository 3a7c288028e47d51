package controller

import (
	"errors"

	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"

	"github.com/rivo/tview"
)

// Test utilities for controller unit tests

var errTestUnknownScreen = errors.New("test factory: unknown screen")

type otherScreen struct{}

func (otherScreen) Kind() model.ScreenKind { return "other" }

func testPresenterFactory(screen model.Screen) (presenter.Presenter, error) {
	switch s := screen.(type) {
	case model.HomeScreen:
		return presenter.NewHomePresenter(), nil
	case model.CounterScreen:
		return presenter.NewCounterPresenter(s.Title), nil
	default:
		return nil, errTestUnknownScreen
	}
}

// newTestNavigationController creates a navigation controller without a tview.Application
func newTestNavigationController() *NavigationController {
	nc := NewNavigationController(nil)
	nc.SetPresenterFactory(testPresenterFactory)
	return nc
}

func counterOf(entry *ViewEntry) int {
	return entry.Presenter.Present().(presenter.CounterState).Counter
}

// stubView is a minimal View for router tests
type stubView struct {
	screen   model.Screen
	registry *ActionRegistry
}

func (v *stubView) GetPrimitive() tview.Primitive      { return tview.NewBox() }
func (v *stubView) GetActionRegistry() *ActionRegistry { return v.registry }
func (v *stubView) GetScreen() model.Screen            { return v.screen }
func (v *stubView) OnFocus()                           {}
func (v *stubView) OnBlur()                            {}

// stubListView is a home-like view with tagged, selectable rows
type stubListView struct {
	stubView
	rows     []string
	selected int
	clicked  []string
}

func newStubListView() *stubListView {
	rows := make([]string, model.HomeRowCount)
	for i := range rows {
		rows[i] = model.CounterTitle(i)
	}
	return &stubListView{
		stubView: stubView{screen: model.HomeScreen{}, registry: HomeViewActions()},
		rows:     rows,
	}
}

func (v *stubListView) Tags() []string { return v.rows }

func (v *stubListView) TagText(tag string) (string, bool) {
	for _, r := range v.rows {
		if r == tag {
			return r, true
		}
	}
	return "", false
}

func (v *stubListView) PerformClick(tag string) bool {
	if _, ok := v.TagText(tag); !ok {
		return false
	}
	v.clicked = append(v.clicked, tag)
	return true
}

func (v *stubListView) GetSelectedID() string { return v.rows[v.selected] }

func (v *stubListView) SetSelectedID(id string) {
	for i, r := range v.rows {
		if r == id {
			v.selected = i
		}
	}
}

func (v *stubListView) MoveSelection(delta int) {
	v.selected = min(max(v.selected+delta, 0), len(v.rows)-1)
}
