package header

import "github.com/boolean-maybe/mycounter/config"

// ColorScheme defines color pairs for different action categories
type ColorScheme struct {
	KeyColor   string
	LabelColor string
}

// getColorScheme returns the color scheme for the given action type.
// Falls back to the global scheme if the type is not found.
func getColorScheme(colorType int) ColorScheme {
	colors := config.GetColors()

	switch colorType {
	case colorTypeView:
		return ColorScheme{
			KeyColor:   colors.HelpViewKeyColor,
			LabelColor: colors.HelpViewLabelColor,
		}
	default:
		return ColorScheme{
			KeyColor:   colors.HelpGlobalKeyColor,
			LabelColor: colors.HelpGlobalLabelColor,
		}
	}
}
