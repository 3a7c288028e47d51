package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/boolean-maybe/mycounter/config"
)

// SystemInfo describes the terminal the counter app is about to take over.
// Collected before the tview screen starts, so everything comes from the
// environment and the terminfo database.
type SystemInfo struct {
	OS           string
	Architecture string

	TermType      string // $TERM
	ColorTerm     string // $COLORTERM
	DetectedTheme string // "dark", "light", "unknown"
	ColorSupport  string // "monochrome", "16-color", "256-color", "truecolor", "unknown"
	ColorCount    int

	ConfigDir string
	CacheDir  string
}

// NewSystemInfo collects system information without initializing a screen.
func NewSystemInfo() *SystemInfo {
	info := &SystemInfo{
		OS:            runtime.GOOS,
		Architecture:  runtime.GOARCH,
		TermType:      os.Getenv("TERM"),
		ColorTerm:     os.Getenv("COLORTERM"),
		DetectedTheme: detectTheme(os.Getenv("COLORFGBG")),
	}
	info.ColorSupport, info.ColorCount = colorSupportFromTerminfo(info.TermType, info.ColorTerm)
	info.ConfigDir = safePath(config.GetConfigDir)
	info.CacheDir = safePath(config.GetCacheDir)
	return info
}

// LogAttrs returns the info as slog key/value pairs.
func (s *SystemInfo) LogAttrs() []any {
	return []any{
		"os", s.OS,
		"arch", s.Architecture,
		"term", s.TermType,
		"theme", s.DetectedTheme,
		"color_support", s.ColorSupport,
		"color_count", s.ColorCount,
		"config_dir", s.ConfigDir,
		"cache_dir", s.CacheDir,
	}
}

// String renders the info for --version output.
func (s *SystemInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "os: %s/%s\n", s.OS, s.Architecture)
	fmt.Fprintf(&b, "terminal: %s (%s, %d colors)\n", valueOr(s.TermType, "unknown"), s.ColorSupport, s.ColorCount)
	fmt.Fprintf(&b, "theme: %s\n", s.DetectedTheme)
	if s.ConfigDir != "" {
		fmt.Fprintf(&b, "config: %s\n", s.ConfigDir)
	}
	if s.CacheDir != "" {
		fmt.Fprintf(&b, "cache: %s\n", s.CacheDir)
	}
	return b.String()
}

// detectTheme reads the background half of $COLORFGBG ("fg;bg").
// 0-7 are dark backgrounds, 8+ light.
func detectTheme(colorFGBG string) string {
	parts := strings.Split(colorFGBG, ";")
	if len(parts) < 2 {
		return "unknown"
	}
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "unknown"
	}
	if bg >= 8 {
		return "light"
	}
	return "dark"
}

// colorSupportFromTerminfo prefers $COLORTERM, which modern terminals set even
// when $TERM only claims 256 colors.
func colorSupportFromTerminfo(term, colorTerm string) (string, int) {
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return "truecolor", 1 << 24
	}
	if term == "" {
		return "unknown", 0
	}
	ti, err := tcell.LookupTerminfo(term)
	if err != nil || ti == nil {
		return "unknown", 0
	}
	return classifyColors(ti.Colors), ti.Colors
}

func classifyColors(colors int) string {
	switch {
	case colors >= 1<<24:
		return "truecolor"
	case colors >= 256:
		return "256-color"
	case colors >= 16:
		return "16-color"
	case colors >= 2:
		return "monochrome"
	default:
		return "unknown"
	}
}

// safePath returns "" when paths were never initialized.
func safePath(get func() string) (path string) {
	defer func() {
		if recover() != nil {
			path = ""
		}
	}()
	return get()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
