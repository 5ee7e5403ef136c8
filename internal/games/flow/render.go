package flow

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
)

// FlowColors is the palette flows are drawn with, indexed by flow id.
var FlowColors = []core.Color{
	core.ColorRed,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorOrange,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorBrown,
	core.ColorPink,
	core.ColorTeal,
	core.ColorBrightWhite,
	core.ColorBrightGreen,
}

// FlowColor returns the display color of a flow.
func FlowColor(f board.FlowID) core.Color {
	if f < 0 {
		return core.ColorDefault
	}
	return FlowColors[int(f)%len(FlowColors)]
}

// frameSize returns the size of the framed board: two columns per cell
// plus the trailing gap and both borders, one row per cell plus borders.
func frameSize(g *board.Grid) (w, h int) {
	return g.W*2 + 3, g.H + 2
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.board == nil {
		g.renderOverlay(dst, "No levels found", "Check the levels directory")
		return
	}

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderStatus(dst)

	switch {
	case g.solved:
		g.renderOverlay(dst, "Solved!", "R: replay  Esc: levels")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " Flow"
	if lvl, ok := g.Level(); ok && g.board != nil {
		connected, total := g.board.FlowStats()
		hud = fmt.Sprintf(" Flow | %d/%d %s | Flows: %d/%d | Moves: %d | Filled: %d%%",
			g.levelIndex+1, len(g.levels), lvl.Name, connected, total, g.moves, g.fillPercent())
	}
	dst.DrawTextWithColor(0, 0, hud, core.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', core.ColorGray)
	}

	controls := " ←↑↓→: Move | Space: Select | R: Restart | P: Pause | Esc: Levels"
	dst.DrawTextWithColor(0, 2, controls, core.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 3, '─', core.ColorGray)
	}
}

// fillPercent returns the share of cells that are covered.
func (g *Game) fillPercent() int {
	cells := len(g.board.Grid.Cells)
	if cells == 0 {
		return 0
	}
	return (cells - g.board.Grid.EmptyCount()) * 100 / cells
}

// renderBoard draws the framed grid in the same layout as board.RenderASCII,
// with flow colors applied.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.board
	frameW, frameH := frameSize(b.Grid)
	frame := core.NewRect(g.boardX, g.boardY, frameW, frameH)

	dst.DrawBoxWithColor(frame, core.ColorGray)
	if b.HasActive() {
		dst.SetCell(frame.Right(), frame.Y, core.Cell{
			Rune:  b.Active.Letter(),
			Color: FlowColor(b.Active),
			Bold:  true,
		})
	}

	for y := 0; y < b.Grid.H; y++ {
		sy := frame.Y + 1 + y
		for x := 0; x <= b.Grid.W; x++ {
			sx := frame.X + 1 + x*2
			dst.SetCell(sx, sy, g.separatorCell(x, y))
			if x < b.Grid.W {
				dst.SetCell(sx+1, sy, g.glyphCell(board.C(x, y)))
			}
		}
	}
}

func (g *Game) separatorCell(x, y int) core.Cell {
	r := board.Separator(g.board, x, y)
	switch r {
	case '[', ']':
		color := core.ColorBrightWhite
		if g.board.HasActive() {
			color = FlowColor(g.board.Active)
		}
		return core.Cell{Rune: r, Color: color, Bold: true}
	case ' ':
		return core.Cell{Rune: r}
	default:
		return core.Cell{Rune: r, Color: FlowColor(g.board.Cell(board.C(x-1, y)).Flow)}
	}
}

func (g *Game) glyphCell(c board.Coord) core.Cell {
	cell := g.board.Cell(c)
	return core.Cell{
		Rune:  board.Glyph(cell),
		Color: FlowColor(cell.Flow),
		Bold:  cell.IsEntry(),
	}
}

// renderStatus draws the result of the last action below the board.
func (g *Game) renderStatus(dst *core.Screen) {
	_, frameH := frameSize(g.board.Grid)
	y := g.boardY + frameH + 1
	if g.status != "" {
		dst.DrawTextCenteredWithColor(y, g.status, core.ColorGray)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, core.ColorBrightYellow)
	dst.DrawTextCenteredWithColor(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCenteredWithColor(box.Y+3, line2, core.ColorWhite)
}
