package view

import (
	"log/slog"

	"github.com/boolean-maybe/mycounter/config"
	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"

	"github.com/rivo/tview"
)

// HomeView shows the welcome label and the list of counters.
// Activating a row asks the navigator for that row's counter screen.
type HomeView struct {
	root       *tview.Flex
	welcome    *tview.TextView
	list       *tview.List
	rows       []string
	presenter  presenter.Presenter
	nav        controller.Navigator
	registry   *controller.ActionRegistry
	listenerID int
}

// NewHomeView creates the home view bound to its presenter
func NewHomeView(p presenter.Presenter, nav controller.Navigator) *HomeView {
	hv := &HomeView{
		presenter: p,
		nav:       nav,
		registry:  controller.HomeViewActions(),
	}
	hv.build()
	return hv
}

func (hv *HomeView) build() {
	colors := config.GetColors()

	hv.welcome = tview.NewTextView().
		SetText(WelcomeText).
		SetTextAlign(tview.AlignCenter).
		SetTextColor(colors.HomeWelcomeText)

	hv.list = tview.NewList().ShowSecondaryText(false)
	hv.list.SetMainTextColor(colors.HomeRowText).
		SetShortcutColor(colors.HomeRowShortcut).
		SetSelectedTextColor(colors.HomeRowSelectedText).
		SetSelectedBackgroundColor(colors.HomeRowSelectedBack)
	hv.list.SetBorder(true).
		SetBorderColor(colors.HomeListBorder).
		SetTitle(" Counters ").
		SetTitleColor(colors.HomeListTitleColor)

	hv.rows = make([]string, model.HomeRowCount)
	for row := range model.HomeRowCount {
		title := model.CounterTitle(row)
		hv.rows[row] = title
		hv.list.AddItem(title, "", rune('0'+row), func() { hv.openRow(row) })
	}

	hv.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(hv.welcome, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(hv.list, model.HomeRowCount+2, 0, true).
		AddItem(tview.NewBox(), 0, 1, false)
}

// openRow navigates to the counter for row
func (hv *HomeView) openRow(row int) {
	if row < 0 || row >= len(hv.rows) {
		return
	}
	hv.list.SetCurrentItem(row)
	if hv.nav == nil {
		return
	}
	if err := hv.nav.GoTo(model.CounterScreen{Title: hv.rows[row]}); err != nil {
		slog.Error("failed to open counter", "row", row, "error", err)
	}
}

// render applies a home snapshot. The home state carries no data, so the
// welcome text and rows never change.
func (hv *HomeView) render(state presenter.State) {
	if _, ok := state.(presenter.HomeState); !ok {
		slog.Warn("home view got foreign state", "kind", state.ScreenKind())
	}
}

// GetPrimitive returns the root tview primitive
func (hv *HomeView) GetPrimitive() tview.Primitive {
	return hv.root
}

// GetActionRegistry returns the view's actions
func (hv *HomeView) GetActionRegistry() *controller.ActionRegistry {
	return hv.registry
}

// GetScreen returns HomeScreen
func (hv *HomeView) GetScreen() model.Screen {
	return model.HomeScreen{}
}

// OnFocus subscribes to the presenter and renders its current snapshot
func (hv *HomeView) OnFocus() {
	if hv.presenter == nil {
		return
	}
	hv.listenerID = hv.presenter.Subscribe(hv.render)
	hv.render(hv.presenter.Present())
}

// OnBlur stops listening to the presenter
func (hv *HomeView) OnBlur() {
	if hv.presenter != nil && hv.listenerID != 0 {
		hv.presenter.Unsubscribe(hv.listenerID)
		hv.listenerID = 0
	}
}

// Tags lists the welcome label and one tag per row
func (hv *HomeView) Tags() []string {
	return append([]string{TagWelcomeLabel}, hv.rows...)
}

// TagText returns the text shown for tag
func (hv *HomeView) TagText(tag string) (string, bool) {
	if tag == TagWelcomeLabel {
		return hv.welcome.GetText(true), true
	}
	if row := hv.rowIndex(tag); row >= 0 {
		main, _ := hv.list.GetItemText(row)
		return main, true
	}
	return "", false
}

// PerformClick opens the tagged row; the welcome label is not clickable
func (hv *HomeView) PerformClick(tag string) bool {
	row := hv.rowIndex(tag)
	if row < 0 {
		return false
	}
	hv.openRow(row)
	return true
}

// GetSelectedID returns the tag of the highlighted row
func (hv *HomeView) GetSelectedID() string {
	current := hv.list.GetCurrentItem()
	if current < 0 || current >= len(hv.rows) {
		return ""
	}
	return hv.rows[current]
}

// SetSelectedID highlights the row with the given tag
func (hv *HomeView) SetSelectedID(id string) {
	if row := hv.rowIndex(id); row >= 0 {
		hv.list.SetCurrentItem(row)
	}
}

// MoveSelection moves the highlight by delta rows, clamped to the list
func (hv *HomeView) MoveSelection(delta int) {
	next := min(max(hv.list.GetCurrentItem()+delta, 0), len(hv.rows)-1)
	hv.list.SetCurrentItem(next)
}

func (hv *HomeView) rowIndex(tag string) int {
	for i, r := range hv.rows {
		if r == tag {
			return i
		}
	}
	return -1
}
