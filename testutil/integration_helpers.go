package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/boolean-maybe/mycounter/config"
	"github.com/boolean-maybe/mycounter/controller"
	"github.com/boolean-maybe/mycounter/internal/app"
	"github.com/boolean-maybe/mycounter/internal/bootstrap"
	"github.com/boolean-maybe/mycounter/registry"
	"github.com/boolean-maybe/mycounter/store"
	"github.com/boolean-maybe/mycounter/view"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Requested simulation screen size. The simulation screen may keep its own
// default; read the real size from Screen.Size().
const (
	ScreenWidth  = 80
	ScreenHeight = 24
)

// TestApp wraps the full MVC stack for integration testing with SimulationScreen
type TestApp struct {
	App           *tview.Application
	Screen        tcell.SimulationScreen
	RootLayout    *view.RootLayout
	NavController *controller.NavigationController
	InputRouter   *controller.InputRouter
	Registry      *registry.Registry
	BackStack     *store.InMemoryStore
	t             *testing.T
}

// NewTestApp bootstraps the full MVC stack for integration testing with the
// navigation stack seeded at Home. Mirrors the initialization in bootstrap.
func NewTestApp(t *testing.T) *TestApp {
	return NewTestAppWithStore(t, store.NewInMemoryStore(), config.RestoreNever)
}

// NewTestAppWithStore is NewTestApp with a saved back stack and restore mode.
// The restore prompt always answers "restore".
func NewTestAppWithStore(t *testing.T, backStack *store.InMemoryStore, mode config.RestoreMode) *TestApp {
	t.Helper()

	// Isolate config paths so tests never read the real user config
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))
	config.ResetPathManager()
	t.Cleanup(config.ResetPathManager)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}

	application := tview.NewApplication()
	application.SetScreen(screen)
	screen.SetSize(ScreenWidth, ScreenHeight)
	screen.Clear()

	ui := bootstrap.AssembleUI(application)
	app.InstallGlobalInputCapture(application, ui.InputRouter, ui.Controllers.Nav)

	alwaysRestore := func([]string) (bool, error) { return true, nil }
	if _, err := bootstrap.InitNavigation(ui.Controllers.Nav, backStack, mode, alwaysRestore); err != nil {
		t.Fatalf("failed to seed navigation: %v", err)
	}

	// Do NOT call app.Run() - Draw() renders synchronously
	application.SetRoot(ui.RootLayout.GetPrimitive(), true)

	ta := &TestApp{
		App:           application,
		Screen:        screen,
		RootLayout:    ui.RootLayout,
		NavController: ui.Controllers.Nav,
		InputRouter:   ui.InputRouter,
		Registry:      ui.Controllers.Registry,
		BackStack:     backStack,
		t:             t,
	}
	ta.Draw()
	return ta
}

// Draw forces a synchronous draw without running the app event loop
func (ta *TestApp) Draw() {
	_, width, height := ta.Screen.GetContents()
	ta.RootLayout.GetPrimitive().SetRect(0, 0, width, height)
	ta.Screen.Clear()
	ta.RootLayout.GetPrimitive().Draw(ta.Screen)
	ta.Screen.Show()
}

// SendKey simulates a key press through the app's input capture.
// Events the capture does not consume go to the focused primitive.
func (ta *TestApp) SendKey(key tcell.Key, ch rune, mod tcell.ModMask) {
	event := tcell.NewEventKey(key, ch, mod)
	consumed := false
	if capture := ta.App.GetInputCapture(); capture != nil {
		consumed = capture(event) == nil
	}
	if !consumed {
		ta.sendToFocused(event)
	}
	ta.Draw()
}

// SendRune types a single character
func (ta *TestApp) SendRune(ch rune) {
	ta.SendKey(tcell.KeyRune, ch, tcell.ModNone)
}

// SendKeyToFocused bypasses the input router and hands the key to the focused primitive
func (ta *TestApp) SendKeyToFocused(key tcell.Key, ch rune, mod tcell.ModMask) {
	ta.sendToFocused(tcell.NewEventKey(key, ch, mod))
	ta.Draw()
}

func (ta *TestApp) sendToFocused(event *tcell.EventKey) {
	focused := ta.App.GetFocus()
	if focused == nil {
		return
	}
	if handler := focused.InputHandler(); handler != nil {
		handler(event, func(p tview.Primitive) { ta.App.SetFocus(p) })
	}
}

// ClickAt simulates a left mouse click at screen coordinates
func (ta *TestApp) ClickAt(x, y int) bool {
	handler := ta.RootLayout.GetPrimitive().MouseHandler()
	if handler == nil {
		return false
	}
	event := tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
	setFocus := func(p tview.Primitive) { ta.App.SetFocus(p) }
	handler(tview.MouseLeftDown, event, setFocus)
	consumed, _ := handler(tview.MouseLeftClick, event, setFocus)
	ta.Draw()
	return consumed
}

// ClickText clicks the first cell showing needle. Returns false if needle is not on screen.
func (ta *TestApp) ClickText(needle string) bool {
	found, x, y := ta.FindText(needle)
	if !found {
		return false
	}
	return ta.ClickAt(x, y)
}

// rowText returns the untrimmed text of screen row y
func (ta *TestApp) rowText(y int) string {
	contents, width, height := ta.Screen.GetContents()
	if y < 0 || y >= height {
		return ""
	}
	var row strings.Builder
	for x := range width {
		cell := contents[y*width+x]
		if len(cell.Runes) > 0 {
			row.WriteRune(cell.Runes[0])
		} else {
			row.WriteRune(' ')
		}
	}
	return row.String()
}

// GetTextAt extracts text from a screen region starting at (x, y) with given width
func (ta *TestApp) GetTextAt(x, y, width int) string {
	runes := []rune(ta.rowText(y))
	if x >= len(runes) {
		return ""
	}
	end := min(x+width, len(runes))
	return strings.TrimSpace(string(runes[x:end]))
}

// FindText searches for a text string anywhere on the screen.
// Returns (found, x, y) where x, y are the cell coordinates of the first match.
func (ta *TestApp) FindText(needle string) (bool, int, int) {
	_, _, height := ta.Screen.GetContents()
	for y := range height {
		row := ta.rowText(y)
		if idx := strings.Index(row, needle); idx >= 0 {
			return true, utf8.RuneCountInString(row[:idx]), y
		}
	}
	return false, 0, 0
}

// ScreenText returns the visible screen, one trimmed line per row
func (ta *TestApp) ScreenText() string {
	_, _, height := ta.Screen.GetContents()
	lines := make([]string, height)
	for y := range height {
		lines[y] = strings.TrimRight(ta.rowText(y), " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

// CaptureScreen writes the current screen as text to path, creating parent directories
func (ta *TestApp) CaptureScreen(path string) error {
	ta.Draw()
	//nolint:gosec // G301: 0755 is appropriate for a screenshot directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create screenshot directory: %w", err)
	}
	//nolint:gosec // G306: screenshots are not sensitive
	if err := os.WriteFile(path, []byte(ta.ScreenText()), 0644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}

// DumpScreen prints the current screen content for debugging
func (ta *TestApp) DumpScreen() {
	_, width, height := ta.Screen.GetContents()
	ta.t.Logf("Screen size: %dx%d", width, height)
	for y := range height {
		if line := ta.GetTextAt(0, y, width); line != "" {
			ta.t.Logf("Row %2d: %s", y, line)
		}
	}
}

// ContentView returns the view currently shown in the content area
func (ta *TestApp) ContentView() controller.View {
	return ta.RootLayout.GetContentView()
}

// Cleanup tears down the test app and releases resources
func (ta *TestApp) Cleanup() {
	ta.RootLayout.Cleanup()
	ta.Screen.Fini()
}
