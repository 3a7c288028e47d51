package config

// Color and style definitions for the UI: tcell colors and tview color tags.

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ColorConfig holds all color and style definitions per view
type ColorConfig struct {
	// Home view colors
	HomeWelcomeText     tcell.Color
	HomeRowText         tcell.Color
	HomeRowShortcut     tcell.Color
	HomeRowSelectedText tcell.Color
	HomeRowSelectedBack tcell.Color
	HomeListBorder      tcell.Color
	HomeListTitleColor  tcell.Color

	// Counter view colors
	CounterTitleText     string // tview color string like "[yellow]"
	CounterValueText     string // tview color string like "[white]"
	CounterButtonText    tcell.Color
	CounterButtonBack    tcell.Color
	CounterButtonFocused tcell.Color

	// Help bar action colors
	HelpGlobalKeyColor   string // tview color string for global action keys
	HelpGlobalLabelColor string // tview color string for global action labels
	HelpViewKeyColor     string // tview color string for view action keys
	HelpViewLabelColor   string // tview color string for view action labels
}

// DefaultColors returns the default color configuration
func DefaultColors() *ColorConfig {
	return &ColorConfig{
		// Home
		HomeWelcomeText:     tcell.PaletteColor(153), // Sky Blue (ANSI 153)
		HomeRowText:         tcell.ColorWhite,
		HomeRowShortcut:     tcell.ColorYellow,
		HomeRowSelectedText: tcell.PaletteColor(117), // Light Blue (ANSI 117)
		HomeRowSelectedBack: tcell.PaletteColor(33),  // Blue (ANSI 33)
		HomeListBorder:      tcell.ColorGray,
		HomeListTitleColor:  tcell.ColorYellow,

		// Counter
		CounterTitleText:     "[yellow]",
		CounterValueText:     "[#cccccc]",
		CounterButtonText:    tcell.ColorWhite,
		CounterButtonBack:    tcell.ColorNavy,
		CounterButtonFocused: tcell.PaletteColor(33),

		// Help bar
		HelpGlobalKeyColor:   "#ffff00", // yellow for global actions
		HelpGlobalLabelColor: "#ffffff", // white for global action labels
		HelpViewKeyColor:     "#5fafff", // cyan for view-specific actions
		HelpViewLabelColor:   "#808080", // gray for view-specific labels
	}
}

var (
	globalColors *ColorConfig
	colorsMu     sync.Mutex
)

// GetColors returns the global color configuration with theme-aware overrides
func GetColors() *ColorConfig {
	colorsMu.Lock()
	defer colorsMu.Unlock()
	if globalColors == nil {
		globalColors = DefaultColors()
		if GetEffectiveTheme() == "light" {
			globalColors.HomeRowText = tcell.ColorBlack
			globalColors.CounterValueText = "[black]"
			globalColors.HelpGlobalLabelColor = "#000000"
		}
	}
	return globalColors
}

// SetColors sets a custom color configuration
func SetColors(colors *ColorConfig) {
	colorsMu.Lock()
	defer colorsMu.Unlock()
	globalColors = colors
}
