package integration

import (
	"testing"

	"github.com/boolean-maybe/mycounter/model"
	"github.com/boolean-maybe/mycounter/testutil"
	"github.com/boolean-maybe/mycounter/view"

	"github.com/gdamore/tcell/v2"
)

func TestHomeScreen_StartsAtHome(t *testing.T) {
	ta := testutil.NewTestApp(t)
	defer ta.Cleanup()

	if got := ta.NavController.Depth(); got != 1 {
		t.Fatalf("stack depth = %d, want 1", got)
	}
	if got := ta.NavController.CurrentScreen(); got != (model.HomeScreen{}) {
		t.Fatalf("current screen = %v, want home", got)
	}

	ta.NodeWithTag(view.TagWelcomeLabel).
		AssertIsDisplayed().
		AssertTextEquals(view.WelcomeText)
}

func TestHomeScreen_ShowsAllRows(t *testing.T) {
	ta := testutil.NewTestApp(t)
	defer ta.Cleanup()

	for row := range model.HomeRowCount {
		tag := model.CounterTitle(row)
		ta.NodeWithTag(tag).AssertIsDisplayed().AssertTextEquals(tag)
	}
	ta.NodeWithTag("Counter 5").AssertDoesNotExist()
}

func TestHomeScreen_HelpBarHidesBackOnRoot(t *testing.T) {
	ta := testutil.NewTestApp(t)
	defer ta.Cleanup()

	if found, _, _ := ta.FindText("Quit"); !found {
		ta.DumpScreen()
		t.Error("help bar should show Quit")
	}
	if found, _, _ := ta.FindText("Back"); found {
		ta.DumpScreen()
		t.Error("help bar should not offer Back on the root screen")
	}
}

func TestHomeScreen_EscapeOnRootIsNoop(t *testing.T) {
	ta := testutil.NewTestApp(t)
	defer ta.Cleanup()

	ta.SendKey(tcell.KeyEscape, 0, tcell.ModNone)

	if got := ta.NavController.Depth(); got != 1 {
		t.Errorf("stack depth after Esc = %d, want 1", got)
	}
	ta.NodeWithTag(view.TagWelcomeLabel).AssertIsDisplayed()
}

func TestHomeScreen_DigitShortcutsOpenRows(t *testing.T) {
	for row := range model.HomeRowCount {
		title := model.CounterTitle(row)
		t.Run(title, func(t *testing.T) {
			ta := testutil.NewTestApp(t)
			defer ta.Cleanup()

			ta.SendRune(rune('0' + row))

			want := model.CounterScreen{Title: title}
			if got := ta.NavController.CurrentScreen(); got != want {
				t.Fatalf("current screen = %v, want %v", got, want)
			}
			if found, _, _ := ta.FindText("Page title is " + title); !found {
				ta.DumpScreen()
				t.Errorf("page title for %q not on screen", title)
			}
		})
	}
}

func TestHomeScreen_ArrowSelectionThenEnter(t *testing.T) {
	ta := testutil.NewTestApp(t)
	defer ta.Cleanup()

	ta.SendRune('j')
	ta.SendKey(tcell.KeyDown, 0, tcell.ModNone)
	ta.SendRune('j')
	ta.SendRune('k')
	ta.SendKey(tcell.KeyEnter, 0, tcell.ModNone)

	want := model.CounterScreen{Title: "Counter 2"}
	if got := ta.NavController.CurrentScreen(); got != want {
		t.Fatalf("current screen = %v, want %v", got, want)
	}
}

func TestHomeScreen_MouseClickOpensRow(t *testing.T) {
	ta := testutil.NewTestApp(t)
	defer ta.Cleanup()

	if !ta.ClickText("Counter 3") {
		ta.DumpScreen()
		t.Fatal("click on Counter 3 was not handled")
	}

	want := model.CounterScreen{Title: "Counter 3"}
	if got := ta.NavController.CurrentScreen(); got != want {
		t.Fatalf("current screen = %v, want %v", got, want)
	}
}
