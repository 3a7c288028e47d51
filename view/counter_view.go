package view

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/boolean-maybe/mycounter/config"
	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"

	"github.com/rivo/tview"
)

// CounterView shows one counter: its page title, the current value and an increment button.
// It re-renders whenever its presenter emits a snapshot.
type CounterView struct {
	root       *tview.Flex
	title      *tview.TextView
	value      *tview.TextView
	button     *tview.Button
	screen     model.CounterScreen
	presenter  presenter.Presenter
	registry   *controller.ActionRegistry
	listenerID int

	titleText string
	valueText string
}

// NewCounterView creates a counter view bound to its presenter
func NewCounterView(screen model.CounterScreen, p presenter.Presenter) *CounterView {
	cv := &CounterView{
		screen:    screen,
		presenter: p,
		registry:  controller.CounterViewActions(),
	}
	cv.build()
	cv.render(cv.initialState())
	return cv
}

func (cv *CounterView) build() {
	colors := config.GetColors()

	cv.title = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	cv.value = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	cv.button = tview.NewButton(TagIncrement).SetSelectedFunc(cv.increment)
	cv.button.SetLabelColor(colors.CounterButtonText).
		SetBackgroundColor(colors.CounterButtonBack)
	cv.button.SetBackgroundColorActivated(colors.CounterButtonFocused)

	buttonRow := tview.NewFlex().
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(cv.button, len(TagIncrement)+4, 0, true).
		AddItem(tview.NewBox(), 0, 1, false)

	cv.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(cv.title, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(cv.value, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(buttonRow, 1, 0, true).
		AddItem(tview.NewBox(), 0, 1, false)
}

func (cv *CounterView) initialState() presenter.State {
	if cv.presenter == nil {
		return presenter.CounterState{Title: cv.screen.Title}
	}
	return cv.presenter.Present()
}

// increment is the button handler; keyboard increments go through the input router
func (cv *CounterView) increment() {
	if cv.presenter == nil {
		return
	}
	cv.presenter.Send(presenter.IncrementEvent{})
}

// render applies a counter snapshot
func (cv *CounterView) render(state presenter.State) {
	s, ok := state.(presenter.CounterState)
	if !ok {
		slog.Warn("counter view got foreign state", "kind", state.ScreenKind())
		return
	}
	colors := config.GetColors()

	cv.titleText = fmt.Sprintf("Page title is %s", s.Title)
	cv.valueText = "Counter value is " + strconv.Itoa(s.Counter)
	cv.title.SetText(colors.CounterTitleText + tview.Escape(cv.titleText))
	cv.value.SetText(colors.CounterValueText + cv.valueText)
}

// GetPrimitive returns the root tview primitive
func (cv *CounterView) GetPrimitive() tview.Primitive {
	return cv.root
}

// GetActionRegistry returns the view's actions
func (cv *CounterView) GetActionRegistry() *controller.ActionRegistry {
	return cv.registry
}

// GetScreen returns the counter screen this view renders
func (cv *CounterView) GetScreen() model.Screen {
	return cv.screen
}

// OnFocus subscribes to the presenter and renders its current snapshot
func (cv *CounterView) OnFocus() {
	if cv.presenter == nil {
		return
	}
	cv.listenerID = cv.presenter.Subscribe(cv.render)
	cv.render(cv.presenter.Present())
}

// OnBlur stops listening to the presenter
func (cv *CounterView) OnBlur() {
	if cv.presenter != nil && cv.listenerID != 0 {
		cv.presenter.Unsubscribe(cv.listenerID)
		cv.listenerID = 0
	}
}

// Tags lists the counter display and the increment button
func (cv *CounterView) Tags() []string {
	return []string{TagCounter, TagIncrement}
}

// TagText returns the plain text shown for tag
func (cv *CounterView) TagText(tag string) (string, bool) {
	switch tag {
	case TagCounter:
		return cv.valueText, true
	case TagIncrement:
		return cv.button.GetLabel(), true
	default:
		return "", false
	}
}

// PerformClick presses the increment button; the counter display is not clickable
func (cv *CounterView) PerformClick(tag string) bool {
	if tag != TagIncrement {
		return false
	}
	cv.increment()
	return true
}

// PageTitle returns the plain page title line
func (cv *CounterView) PageTitle() string {
	return cv.titleText
}
