package view

import (
	"testing"

	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"
)

func newFocusedCounterView(title string) (*CounterView, *presenter.CounterPresenter) {
	p := presenter.NewCounterPresenter(title)
	cv := NewCounterView(model.CounterScreen{Title: title}, p)
	cv.OnFocus()
	return cv, p
}

func counterText(t *testing.T, cv *CounterView) string {
	t.Helper()
	text, ok := cv.TagText(TagCounter)
	if !ok {
		t.Fatal("counter tag missing")
	}
	return text
}

func TestCounterView_InitialRender(t *testing.T) {
	cv, _ := newFocusedCounterView("Counter 2")

	if got := cv.PageTitle(); got != "Page title is Counter 2" {
		t.Errorf("PageTitle() = %q", got)
	}
	if got := counterText(t, cv); got != "Counter value is 0" {
		t.Errorf("counter text = %q", got)
	}
	label, ok := cv.TagText(TagIncrement)
	if !ok || label != "Increment" {
		t.Errorf("TagText(Increment) = %q, %v", label, ok)
	}
	if _, ok := cv.TagText("Welcome Label"); ok {
		t.Error("counter view has no welcome label")
	}
}

func TestCounterView_ClickIncrements(t *testing.T) {
	cv, p := newFocusedCounterView("Counter 2")

	for range 3 {
		if !cv.PerformClick(TagIncrement) {
			t.Fatal("PerformClick(Increment) = false")
		}
	}
	if got := counterText(t, cv); got != "Counter value is 3" {
		t.Errorf("counter text = %q", got)
	}
	if got := p.Present().(presenter.CounterState).Counter; got != 3 {
		t.Errorf("presenter counter = %d", got)
	}

	if cv.PerformClick(TagCounter) {
		t.Error("counter display should not be clickable")
	}
}

func TestCounterView_RendersPresenterEvents(t *testing.T) {
	cv, p := newFocusedCounterView("Counter 0")

	// increments from the input router reach the view through the subscription
	p.Send(presenter.IncrementEvent{})
	p.Send(presenter.OtherEvent{})
	if got := counterText(t, cv); got != "Counter value is 1" {
		t.Errorf("counter text = %q", got)
	}

	cv.OnBlur()
	p.Send(presenter.IncrementEvent{})
	if got := counterText(t, cv); got != "Counter value is 1" {
		t.Errorf("blurred view should not re-render, got %q", got)
	}

	// refocus catches up with the presenter
	cv.OnFocus()
	if got := counterText(t, cv); got != "Counter value is 2" {
		t.Errorf("counter text after refocus = %q", got)
	}
}

func TestCounterView_Actions(t *testing.T) {
	cv, _ := newFocusedCounterView("Counter 1")

	if cv.GetScreen() != (model.CounterScreen{Title: "Counter 1"}) {
		t.Errorf("GetScreen() = %v", cv.GetScreen())
	}
	header := cv.GetActionRegistry().GetHeaderActions()
	if len(header) != 1 || header[0].ID != controller.ActionIncrement {
		t.Errorf("header actions = %v", header)
	}
}

func TestCounterView_EscapesTitle(t *testing.T) {
	cv, _ := newFocusedCounterView("[red]x")
	if got := cv.PageTitle(); got != "Page title is [red]x" {
		t.Errorf("PageTitle() = %q", got)
	}
}
