package tui

import (
	"strings"

	"github.com/vovakirdan/tui-flow/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same look to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme *Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor, startBold := s.GetCell(x, y).Style()

			// Collect consecutive cells with the same look
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if c, b := cell.Style(); c != startColor || b != startBold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault && !startBold {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(theme.CellStyle(startColor, startBold).Render(run.String()))
		}
	}
	return sb.String()
}
