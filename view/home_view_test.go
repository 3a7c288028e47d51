package view

import (
	"errors"
	"testing"

	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/presenter"
)

func TestHomeView_Tags(t *testing.T) {
	hv := NewHomeView(presenter.NewHomePresenter(), &fakeNavigator{})

	text, ok := hv.TagText(TagWelcomeLabel)
	if !ok || text != WelcomeText {
		t.Errorf("TagText(%q) = %q, %v", TagWelcomeLabel, text, ok)
	}

	for row := range model.HomeRowCount {
		tag := model.CounterTitle(row)
		text, ok := hv.TagText(tag)
		if !ok || text != tag {
			t.Errorf("TagText(%q) = %q, %v", tag, text, ok)
		}
	}

	if _, ok := hv.TagText("Counter 5"); ok {
		t.Error("there is no sixth row")
	}
	if got := len(hv.Tags()); got != model.HomeRowCount+1 {
		t.Errorf("len(Tags()) = %d, want %d", got, model.HomeRowCount+1)
	}
}

func TestHomeView_ClickNavigates(t *testing.T) {
	for row := range model.HomeRowCount {
		nav := &fakeNavigator{}
		hv := NewHomeView(presenter.NewHomePresenter(), nav)

		if !hv.PerformClick(model.CounterTitle(row)) {
			t.Fatalf("PerformClick(row %d) = false", row)
		}
		want := model.CounterScreen{Title: model.CounterTitle(row)}
		if len(nav.screens) != 1 || nav.screens[0] != want {
			t.Errorf("row %d navigated to %v, want [%v]", row, nav.screens, want)
		}
		if hv.GetSelectedID() != model.CounterTitle(row) {
			t.Errorf("clicked row should become selected, got %q", hv.GetSelectedID())
		}
	}
}

func TestHomeView_WelcomeNotClickable(t *testing.T) {
	nav := &fakeNavigator{}
	hv := NewHomeView(presenter.NewHomePresenter(), nav)

	if hv.PerformClick(TagWelcomeLabel) {
		t.Error("welcome label should not be clickable")
	}
	if len(nav.screens) != 0 {
		t.Errorf("unexpected navigation: %v", nav.screens)
	}
}

func TestHomeView_NavigationErrorIsLogged(t *testing.T) {
	nav := &fakeNavigator{err: errors.New("boom")}
	hv := NewHomeView(presenter.NewHomePresenter(), nav)

	// the click is still consumed
	if !hv.PerformClick("Counter 0") {
		t.Error("PerformClick should report the row was clicked")
	}
}

func TestHomeView_Selection(t *testing.T) {
	hv := NewHomeView(presenter.NewHomePresenter(), nil)

	if hv.GetSelectedID() != "Counter 0" {
		t.Fatalf("initial selection = %q", hv.GetSelectedID())
	}
	hv.MoveSelection(3)
	if hv.GetSelectedID() != "Counter 3" {
		t.Errorf("after +3 selection = %q", hv.GetSelectedID())
	}
	hv.MoveSelection(10)
	if hv.GetSelectedID() != "Counter 4" {
		t.Errorf("selection should clamp to last row, got %q", hv.GetSelectedID())
	}
	hv.SetSelectedID("Counter 1")
	if hv.GetSelectedID() != "Counter 1" {
		t.Errorf("SetSelectedID ignored, got %q", hv.GetSelectedID())
	}
	hv.SetSelectedID("nope")
	if hv.GetSelectedID() != "Counter 1" {
		t.Errorf("unknown id should not move selection, got %q", hv.GetSelectedID())
	}
}

func TestHomeView_FocusSubscribes(t *testing.T) {
	p := presenter.NewHomePresenter()
	hv := NewHomeView(p, nil)

	hv.OnFocus()
	if hv.listenerID == 0 {
		t.Fatal("OnFocus should subscribe")
	}
	hv.OnBlur()
	if hv.listenerID != 0 {
		t.Error("OnBlur should unsubscribe")
	}

	var _ controller.TaggedView = hv
	var _ controller.SelectableView = hv
}
