package controller

import (
	"testing"

	"github.com/boolean-maybe/mycounter/model"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestInputRouter_HomeRowShortcut(t *testing.T) {
	nc := newTestNavigationController()
	_ = nc.PushView(model.HomeScreen{})
	home := newStubListView()
	nc.SetActiveViewGetter(func() View { return home })
	ir := NewInputRouter(nc)

	if !ir.HandleInput(runeKey('2'), nc.CurrentView()) {
		t.Fatal("digit key should be handled on home")
	}
	if len(home.clicked) != 1 || home.clicked[0] != "Counter 2" {
		t.Errorf("clicked = %v, want [Counter 2]", home.clicked)
	}
}

func TestInputRouter_HomeSelectionAndOpen(t *testing.T) {
	nc := newTestNavigationController()
	_ = nc.PushView(model.HomeScreen{})
	home := newStubListView()
	nc.SetActiveViewGetter(func() View { return home })
	ir := NewInputRouter(nc)

	ir.HandleInput(runeKey('j'), nc.CurrentView())
	ir.HandleInput(runeKey('j'), nc.CurrentView())
	ir.HandleInput(runeKey('k'), nc.CurrentView())
	if home.GetSelectedID() != "Counter 1" {
		t.Fatalf("selected = %q, want Counter 1", home.GetSelectedID())
	}

	if !ir.HandleInput(specialKey(tcell.KeyEnter), nc.CurrentView()) {
		t.Fatal("Enter should be handled on home")
	}
	if len(home.clicked) != 1 || home.clicked[0] != "Counter 1" {
		t.Errorf("clicked = %v, want [Counter 1]", home.clicked)
	}

	// selection clamps at the edges
	for range 10 {
		ir.HandleInput(runeKey('k'), nc.CurrentView())
	}
	if home.GetSelectedID() != "Counter 0" {
		t.Errorf("selected = %q, want Counter 0", home.GetSelectedID())
	}
}

func TestInputRouter_CounterIncrement(t *testing.T) {
	nc := newTestNavigationController()
	_ = nc.PushView(model.HomeScreen{})
	_ = nc.GoTo(model.CounterScreen{Title: "Counter 2"})
	counterView := &stubView{screen: model.CounterScreen{Title: "Counter 2"}, registry: CounterViewActions()}
	nc.SetActiveViewGetter(func() View { return counterView })
	ir := NewInputRouter(nc)

	if !ir.HandleInput(specialKey(tcell.KeyEnter), nc.CurrentView()) {
		t.Fatal("Enter should increment on counter")
	}
	if !ir.HandleInput(runeKey('+'), nc.CurrentView()) {
		t.Fatal("'+' should increment on counter")
	}
	if got := counterOf(nc.CurrentView()); got != 2 {
		t.Errorf("counter = %d, want 2", got)
	}

	if ir.HandleInput(runeKey('x'), nc.CurrentView()) {
		t.Error("unbound key should not be handled")
	}
	if got := counterOf(nc.CurrentView()); got != 2 {
		t.Errorf("counter = %d after unbound key, want 2", got)
	}
}

func TestInputRouter_BackPops(t *testing.T) {
	nc := newTestNavigationController()
	_ = nc.PushView(model.HomeScreen{})
	_ = nc.GoTo(model.CounterScreen{Title: "Counter 0"})
	ir := NewInputRouter(nc)

	if !ir.HandleInput(specialKey(tcell.KeyEscape), nc.CurrentView()) {
		t.Fatal("Esc should be handled")
	}
	if nc.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", nc.Depth())
	}

	// Esc on the root is consumed but leaves the stack alone
	if !ir.HandleInput(specialKey(tcell.KeyEscape), nc.CurrentView()) {
		t.Error("Esc on root should still be consumed")
	}
	if nc.Depth() != 1 || nc.CurrentScreen() != (model.HomeScreen{}) {
		t.Errorf("stack = %v, want [home]", nc.Screens())
	}
}

func TestInputRouter_QuitWithoutApp(t *testing.T) {
	nc := newTestNavigationController()
	_ = nc.PushView(model.HomeScreen{})
	ir := NewInputRouter(nc)

	if !ir.HandleInput(runeKey('q'), nc.CurrentView()) {
		t.Error("q should be handled")
	}
}

func TestInputRouter_NoEntryOrView(t *testing.T) {
	nc := newTestNavigationController()
	ir := NewInputRouter(nc)

	if ir.HandleInput(specialKey(tcell.KeyEnter), nil) {
		t.Error("input without a stack entry should not be handled")
	}

	_ = nc.PushView(model.HomeScreen{})
	if ir.HandleInput(specialKey(tcell.KeyEnter), nc.CurrentView()) {
		t.Error("input without an active view should not be handled")
	}
}

func TestInputRouter_UnknownScreen(t *testing.T) {
	nc := NewNavigationController(nil)
	_ = nc.PushView(otherScreen{})
	v := &stubView{screen: otherScreen{}, registry: CounterViewActions()}
	nc.SetActiveViewGetter(func() View { return v })
	ir := NewInputRouter(nc)

	if ir.HandleInput(specialKey(tcell.KeyEnter), nc.CurrentView()) {
		t.Error("actions for unknown screens should not be handled")
	}
}
