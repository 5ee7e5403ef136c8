package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flow/internal/core"
)

// Theme contains all configurable visual styles for Flow.
type Theme struct {
	Name string

	// Palette maps screen colors to terminal colors.
	// Colors missing from the palette render unstyled.
	Palette map[core.Color]lipgloss.Color

	// HUD styles
	HUDControls lipgloss.Style
	Help        lipgloss.Style

	// Level picker and records styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemSolved  lipgloss.Style
	MenuDescription lipgloss.Style
	Border          lipgloss.Color
	Highlight       lipgloss.Color
	HighlightBG     lipgloss.Color

	styles map[styleKey]lipgloss.Style
}

type styleKey struct {
	color core.Color
	bold  bool
}

func basePalette() map[core.Color]lipgloss.Color {
	return map[core.Color]lipgloss.Color{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
		core.ColorPink:          "205",
		core.ColorTeal:          "30",
		core.ColorBrown:         "130",
	}
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Palette: basePalette(),

		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Border:          lipgloss.Color("240"),
		Highlight:       lipgloss.Color("229"),
		HighlightBG:     lipgloss.Color("57"),
	}.withStyles()
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Palette[core.ColorRed] = "197"    // Neon red
	theme.Palette[core.ColorBlue] = "33"    // Electric blue
	theme.Palette[core.ColorYellow] = "227" // Neon yellow
	theme.Palette[core.ColorGreen] = "118"  // Neon green
	theme.Palette[core.ColorOrange] = "214"
	theme.Palette[core.ColorCyan] = "87"
	theme.Palette[core.ColorMagenta] = "171"
	theme.Palette[core.ColorPink] = "199"
	theme.Palette[core.ColorTeal] = "43"
	theme.MenuTitle = theme.MenuTitle.Foreground(lipgloss.Color("199"))
	return theme.withStyles()
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "pastel"
	theme.Palette[core.ColorRed] = "210"
	theme.Palette[core.ColorBlue] = "111"
	theme.Palette[core.ColorYellow] = "229"
	theme.Palette[core.ColorGreen] = "157"
	theme.Palette[core.ColorOrange] = "216"
	theme.Palette[core.ColorCyan] = "123"
	theme.Palette[core.ColorMagenta] = "183"
	theme.Palette[core.ColorBrown] = "180"
	theme.Palette[core.ColorPink] = "218"
	theme.Palette[core.ColorTeal] = "116"
	theme.MenuTitle = theme.MenuTitle.Foreground(lipgloss.Color("218"))
	return theme.withStyles()
}

// MonochromeTheme returns a grayscale theme.
// Flows stay distinguishable by their letters.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	grays := []lipgloss.Color{"255", "252", "250", "248", "246", "244", "242", "240"}
	for c := core.ColorRed; c <= core.ColorBrown; c++ {
		if c == core.ColorGray {
			continue
		}
		theme.Palette[c] = grays[int(c)%len(grays)]
	}
	theme.MenuTitle = theme.MenuTitle.Foreground(lipgloss.Color("255"))
	theme.MenuItemActive = theme.MenuItemActive.Foreground(lipgloss.Color("255"))
	theme.MenuItemSolved = theme.MenuItemSolved.Foreground(lipgloss.Color("250"))
	theme.Highlight = "255"
	theme.HighlightBG = "238"
	return theme.withStyles()
}

// ThemeByName returns the named theme, or the default one for unknown names.
func ThemeByName(name string) Theme {
	switch name {
	case "neon":
		return NeonTheme()
	case "pastel":
		return PastelTheme()
	case "mono":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// withStyles precomputes the style of every cell look, so a theme can
// be shared by concurrent sessions without writes.
func (t Theme) withStyles() Theme {
	t.styles = make(map[styleKey]lipgloss.Style, 2*len(t.Palette)+2)
	for _, bold := range []bool{false, true} {
		t.styles[styleKey{core.ColorDefault, bold}] = newCellStyle(nil, bold)
		for c, fg := range t.Palette {
			t.styles[styleKey{c, bold}] = newCellStyle(&fg, bold)
		}
	}
	return t
}

func newCellStyle(fg *lipgloss.Color, bold bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != nil {
		s = s.Foreground(*fg)
	}
	if bold {
		s = s.Bold(true)
	}
	return s
}

// CellStyle returns the style for a screen cell look.
func (t *Theme) CellStyle(c core.Color, bold bool) lipgloss.Style {
	if s, ok := t.styles[styleKey{c, bold}]; ok {
		return s
	}
	if fg, ok := t.Palette[c]; ok {
		return newCellStyle(&fg, bold)
	}
	return newCellStyle(nil, bold)
}
