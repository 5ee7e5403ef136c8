package board

import "strings"

// Glyph returns the box-drawing rune for a cell. Empty cells are spaces,
// entries are their flow letter, path heads are half lines pointing back
// along the path and interior lines join their two directions.
func Glyph(c Cell) rune {
	switch c.Kind {
	case KindEntry:
		return c.Flow.Letter()
	case KindLine:
		if c.To == DirNone {
			return headGlyph(c.From)
		}
		return joinGlyph(c.From, c.To)
	default:
		return ' '
	}
}

func headGlyph(from Dir) rune {
	switch from {
	case North:
		return '╵'
	case East:
		return '╶'
	case South:
		return '╷'
	case West:
		return '╴'
	default:
		invariant("line head with no origin")
		return '?'
	}
}

// joinGlyph maps an unordered pair of directions to a line segment.
func joinGlyph(a, b Dir) rune {
	has := func(x, y Dir) bool {
		return (a == x && b == y) || (a == y && b == x)
	}
	switch {
	case has(North, East):
		return '└'
	case has(North, South):
		return '│'
	case has(North, West):
		return '┘'
	case has(East, South):
		return '┌'
	case has(East, West):
		return '─'
	case has(South, West):
		return '┐'
	default:
		invariant("line joins %s to %s", a, b)
		return '?'
	}
}

// Separator returns the rune drawn in the gap left of column x on row y:
// a cursor bracket, a horizontal connector, or a space. x may equal W for
// the gap after the last column.
func Separator(b *Board, x, y int) rune {
	switch {
	case b.Cursor == C(x, y):
		return '['
	case x > 0 && b.Cursor == C(x-1, y):
		return ']'
	case x > 0 && x < b.Grid.W && b.Grid.Get(C(x-1, y)).Connects(East):
		return '─'
	default:
		return ' '
	}
}

// RenderASCII draws the board as framed text: each cell takes two columns,
// the gap and the glyph, and the active flow letter follows the top frame.
// This is used for screenshots, the check command and golden tests.
func RenderASCII(b *Board) string {
	var sb strings.Builder
	inner := b.Grid.W*2 + 1

	sb.WriteRune('┌')
	sb.WriteString(strings.Repeat("─", inner))
	sb.WriteRune('┐')
	sb.WriteRune(b.Active.Letter())
	sb.WriteByte('\n')

	for y := 0; y < b.Grid.H; y++ {
		sb.WriteRune('│')
		for x := 0; x < b.Grid.W; x++ {
			sb.WriteRune(Separator(b, x, y))
			sb.WriteRune(Glyph(b.Grid.Get(C(x, y))))
		}
		sb.WriteRune(Separator(b, b.Grid.W, y))
		sb.WriteString("│\n")
	}

	sb.WriteRune('└')
	sb.WriteString(strings.Repeat("─", inner))
	sb.WriteString("┘\n")
	return sb.String()
}

// RenderLayout writes the grid back in the textual layout format. Drawn
// path cells are written as empty, so the result reloads as a fresh level.
func RenderLayout(g *Grid) string {
	var sb strings.Builder
	sb.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			cell := g.Get(C(x, y))
			if cell.IsEntry() {
				sb.WriteRune(cell.Flow.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
