package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI color.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorTeal
	ColorBrown
)

// Cell is one character of the screen buffer.
type Cell struct {
	Rune  rune
	Color Color
	Bold  bool
}

// Style returns the cell's look without its rune, for run grouping.
func (c Cell) Style() (Color, bool) {
	return c.Color, c.Bold
}
