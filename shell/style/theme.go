package style

import "image/color"

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background     = color.NRGBA{0x1e, 0x1e, 0x1e, 0xff}
	Accent         = color.NRGBA{0xff, 0x8c, 0x00, 0xff} // Orange
	Text           = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextDim        = color.NRGBA{0x96, 0x96, 0x96, 0xff}
	TextSelected   = color.NRGBA{0x00, 0x00, 0x00, 0xff}
	ItemBackground = color.NRGBA{0x32, 0x32, 0x32, 0xff}
	ItemSelected   = color.NRGBA{0xff, 0x8c, 0x00, 0xff}
	Highlight      = color.NRGBA{0xb4, 0x6e, 0x3c, 0xff} // Brown, focused row
	Editing        = color.NRGBA{0xff, 0xa0, 0x28, 0xff}
	TabInactive    = color.NRGBA{0x46, 0x46, 0x46, 0xff}
	Overlay        = color.NRGBA{0x1e, 0x1e, 0x1e, 0xff} // Base for notices (alpha applied per use)
	Error          = color.NRGBA{0xe0, 0x40, 0x40, 0xff}
)

// Theme holds all color values for a UI theme
type Theme struct {
	Name           string
	Background     color.NRGBA
	Accent         color.NRGBA
	Text           color.NRGBA
	TextDim        color.NRGBA
	TextSelected   color.NRGBA
	ItemBackground color.NRGBA
	ItemSelected   color.NRGBA
	Highlight      color.NRGBA
	Editing        color.NRGBA
	TabInactive    color.NRGBA
	Overlay        color.NRGBA
	Error          color.NRGBA
}

// Predefined themes
var (
	ThemeDefault = Theme{
		Name:           "Default",
		Background:     color.NRGBA{0x1e, 0x1e, 0x1e, 0xff},
		Accent:         color.NRGBA{0xff, 0x8c, 0x00, 0xff},
		Text:           color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextDim:        color.NRGBA{0x96, 0x96, 0x96, 0xff},
		TextSelected:   color.NRGBA{0x00, 0x00, 0x00, 0xff},
		ItemBackground: color.NRGBA{0x32, 0x32, 0x32, 0xff},
		ItemSelected:   color.NRGBA{0xff, 0x8c, 0x00, 0xff},
		Highlight:      color.NRGBA{0xb4, 0x6e, 0x3c, 0xff},
		Editing:        color.NRGBA{0xff, 0xa0, 0x28, 0xff},
		TabInactive:    color.NRGBA{0x46, 0x46, 0x46, 0xff},
		Overlay:        color.NRGBA{0x1e, 0x1e, 0x1e, 0xff},
		Error:          color.NRGBA{0xe0, 0x40, 0x40, 0xff},
	}

	ThemeHighContrast = Theme{
		Name:           "High Contrast",
		Background:     color.NRGBA{0x00, 0x00, 0x00, 0xff},
		Accent:         color.NRGBA{0xff, 0xd7, 0x00, 0xff}, // Yellow
		Text:           color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextDim:        color.NRGBA{0xc0, 0xc0, 0xc0, 0xff},
		TextSelected:   color.NRGBA{0x00, 0x00, 0x00, 0xff},
		ItemBackground: color.NRGBA{0x20, 0x20, 0x20, 0xff},
		ItemSelected:   color.NRGBA{0xff, 0xd7, 0x00, 0xff},
		Highlight:      color.NRGBA{0x40, 0x40, 0xa0, 0xff},
		Editing:        color.NRGBA{0xff, 0xd7, 0x00, 0xff},
		TabInactive:    color.NRGBA{0x30, 0x30, 0x30, 0xff},
		Overlay:        color.NRGBA{0x00, 0x00, 0x00, 0xff},
		Error:          color.NRGBA{0xff, 0x30, 0x30, 0xff},
	}
)

// AvailableThemes lists all themes in display order
var AvailableThemes = []Theme{ThemeDefault, ThemeHighContrast}

// ThemeNames returns the names of all available themes
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// GetThemeByName returns the theme with the given name, or ThemeDefault
func GetThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// IsValidThemeName reports whether name is a known theme
func IsValidThemeName(name string) bool {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ApplyTheme sets the package-level colors from a theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Accent = theme.Accent
	Text = theme.Text
	TextDim = theme.TextDim
	TextSelected = theme.TextSelected
	ItemBackground = theme.ItemBackground
	ItemSelected = theme.ItemSelected
	Highlight = theme.Highlight
	Editing = theme.Editing
	TabInactive = theme.TabInactive
	Overlay = theme.Overlay
	Error = theme.Error
}

// ApplyThemeByName looks up a theme by name and applies it
func ApplyThemeByName(name string) {
	ApplyTheme(GetThemeByName(name))
}
