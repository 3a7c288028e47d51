package header

import (
	"fmt"
	"strings"

	"github.com/boolean-maybe/mycounter/controller"

	"github.com/rivo/tview"
)

// HeaderHeight is the number of rows the help bar occupies
const HeaderHeight = 1

// HeaderColumnSpacing separates adjacent actions
const HeaderColumnSpacing = 2

const (
	colorTypeGlobal = 0
	colorTypeView   = 1
)

// cellData holds data for a single action in the bar
type cellData struct {
	key       string
	label     string
	colorType int
}

// ContextHelpWidget displays the keyboard shortcuts of the active view
type ContextHelpWidget struct {
	*tview.TextView
	width int // calculated visible width of content
}

// NewContextHelpWidget creates a new context help display widget
func NewContextHelpWidget() *ContextHelpWidget {
	tv := tview.NewTextView()
	tv.SetDynamicColors(true)
	tv.SetTextAlign(tview.AlignLeft)
	tv.SetWrap(false)

	return &ContextHelpWidget{TextView: tv}
}

// GetWidth returns the current calculated width of the content
func (chw *ContextHelpWidget) GetWidth() int {
	return chw.width
}

// SetActions renders global actions followed by the view's header actions.
// Back is left out when there is nothing to go back to.
func (chw *ContextHelpWidget) SetActions(viewActions *controller.ActionRegistry, canGoBack bool) int {
	var cells []cellData
	globalIDs := make(map[controller.ActionID]bool)

	for _, a := range controller.DefaultGlobalActions().GetHeaderActions() {
		globalIDs[a.ID] = true
		if a.ID == controller.ActionBack && !canGoBack {
			continue
		}
		cells = append(cells, newCell(a, colorTypeGlobal))
	}

	if viewActions != nil {
		for _, a := range viewActions.GetHeaderActions() {
			if globalIDs[a.ID] {
				continue
			}
			cells = append(cells, newCell(a, colorTypeView))
		}
	}

	return chw.render(cells)
}

// Primitive returns the underlying tview primitive
func (chw *ContextHelpWidget) Primitive() tview.Primitive {
	return chw.TextView
}

func newCell(a controller.Action, colorType int) cellData {
	return cellData{key: a.KeyLabel(), label: a.Label, colorType: colorType}
}

// render writes cells on a single line
func (chw *ContextHelpWidget) render(cells []cellData) int {
	if len(cells) == 0 {
		chw.SetText("")
		chw.width = 0
		return 0
	}

	parts := make([]string, len(cells))
	for i, cell := range cells {
		scheme := getColorScheme(cell.colorType)
		parts[i] = fmt.Sprintf("[%s]<%s>[%s] %s", scheme.KeyColor, cell.key, scheme.LabelColor, cell.label)
	}
	line := " " + strings.Join(parts, strings.Repeat(" ", HeaderColumnSpacing))
	chw.SetText(line)

	chw.width = visibleWidthIgnoringTviewTags(line)
	return chw.width
}

// visibleWidthIgnoringTviewTags calculates the visible width of a string with tview tags
func visibleWidthIgnoringTviewTags(s string) int {
	visibleCount := 0
	inTag := false
	for _, r := range s {
		if r == '[' {
			inTag = true
			continue
		}
		if inTag && r == ']' {
			inTag = false
			continue
		}
		if !inTag {
			visibleCount++
		}
	}
	return visibleCount
}
