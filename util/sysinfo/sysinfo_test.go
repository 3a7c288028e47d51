package sysinfo

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/boolean-maybe/mycounter/config"
)

func TestDetectTheme(t *testing.T) {
	tests := []struct {
		name      string
		colorFGBG string
		want      string
	}{
		{"empty", "", "unknown"},
		{"dark background", "15;0", "dark"},
		{"light background", "0;15", "light"},
		{"boundary light", "0;8", "light"},
		{"boundary dark", "15;7", "dark"},
		{"three parts uses last", "15;default;0", "dark"},
		{"single value", "15", "unknown"},
		{"not a number", "fg;bg", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectTheme(tt.colorFGBG); got != tt.want {
				t.Errorf("detectTheme(%q) = %q, want %q", tt.colorFGBG, got, tt.want)
			}
		})
	}
}

func TestClassifyColors(t *testing.T) {
	tests := []struct {
		colors int
		want   string
	}{
		{0, "unknown"},
		{2, "monochrome"},
		{8, "monochrome"},
		{16, "16-color"},
		{256, "256-color"},
		{1 << 24, "truecolor"},
	}

	for _, tt := range tests {
		if got := classifyColors(tt.colors); got != tt.want {
			t.Errorf("classifyColors(%d) = %q, want %q", tt.colors, got, tt.want)
		}
	}
}

func TestColorSupportFromTerminfo(t *testing.T) {
	if support, count := colorSupportFromTerminfo("xterm", "truecolor"); support != "truecolor" || count != 1<<24 {
		t.Errorf("COLORTERM=truecolor: got %q/%d", support, count)
	}
	if support, count := colorSupportFromTerminfo("", ""); support != "unknown" || count != 0 {
		t.Errorf("empty TERM: got %q/%d", support, count)
	}
	if support, _ := colorSupportFromTerminfo("no-such-terminal-xyz", ""); support != "unknown" {
		t.Errorf("unknown TERM: got %q", support)
	}
}

func TestNewSystemInfo(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmp, "cache"))
	t.Setenv("COLORFGBG", "0;15")
	t.Setenv("COLORTERM", "24bit")
	config.ResetPathManager()
	t.Cleanup(config.ResetPathManager)
	if err := config.InitPaths(); err != nil {
		t.Fatalf("InitPaths() error = %v", err)
	}

	info := NewSystemInfo()

	if info.OS == "" || info.Architecture == "" {
		t.Errorf("missing runtime info: %+v", info)
	}
	if info.DetectedTheme != "light" {
		t.Errorf("DetectedTheme = %q, want light", info.DetectedTheme)
	}
	if info.ColorSupport != "truecolor" {
		t.Errorf("ColorSupport = %q, want truecolor", info.ColorSupport)
	}
	if info.ConfigDir != config.GetConfigDir() {
		t.Errorf("ConfigDir = %q, want %q", info.ConfigDir, config.GetConfigDir())
	}

	attrs := info.LogAttrs()
	if len(attrs)%2 != 0 {
		t.Fatalf("LogAttrs() has odd length %d", len(attrs))
	}

	out := info.String()
	for _, want := range []string{"os: ", "theme: light", "truecolor"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}

func TestSafePathRecoversPanic(t *testing.T) {
	got := safePath(func() string { panic("not initialized") })
	if got != "" {
		t.Errorf("safePath() = %q, want empty", got)
	}
}
