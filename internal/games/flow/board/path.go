package board

import "fmt"

// MoveResult describes what a directional move did to the board.
type MoveResult uint8

const (
	// MoveOutOfBounds means the target lies outside the grid; nothing changed.
	MoveOutOfBounds MoveResult = iota
	// MoveCursor means no flow was active and only the cursor moved.
	MoveCursor
	// MoveExtended means the active path grew by one cell.
	MoveExtended
	// MoveRetracted means the active path shrank by one cell.
	MoveRetracted
	// MoveCompleted means the active path reached its partner Entry.
	MoveCompleted
	// MoveBlocked means the target is occupied; nothing changed.
	MoveBlocked
)

// String returns the name of the result.
func (r MoveResult) String() string {
	switch r {
	case MoveOutOfBounds:
		return "out_of_bounds"
	case MoveCursor:
		return "cursor"
	case MoveExtended:
		return "extended"
	case MoveRetracted:
		return "retracted"
	case MoveCompleted:
		return "completed"
	case MoveBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Mutated reports whether the result changed any cell.
func (r MoveResult) Mutated() bool {
	return r == MoveExtended || r == MoveRetracted || r == MoveCompleted
}

// invariant aborts on a board state the path engine cannot classify.
// Such a state means the linked path structure is corrupt.
func invariant(format string, args ...any) {
	panic(fmt.Sprintf("invariant: "+format, args...))
}

// draw applies a move of the active flow from the cursor toward d.
// The target must be in bounds.
func (b *Board) draw(d Dir) MoveResult {
	g := b.Grid
	next := b.Cursor.Step(d)
	target := g.Get(next)

	switch {
	case target.IsEmpty():
		g.Set(next, Line(b.Active, d.Opposite()))
		b.setExit(b.Cursor, d)
		b.Cursor = next
		return MoveExtended

	case target.Carries(b.Active) && target.Exit() == d.Opposite():
		// Target is the predecessor of the head: undo one segment.
		if head := g.Get(b.Cursor); !head.IsLine() {
			invariant("retract from %s cell at %v", head.Kind, b.Cursor)
		}
		g.Set(b.Cursor, Empty())
		b.setExit(next, DirNone)
		b.Cursor = next
		return MoveRetracted

	case target.IsEntry() && target.Flow == b.Active && target.To == DirNone:
		target.To = d.Opposite()
		g.Set(next, target)
		b.setExit(b.Cursor, d)
		b.Active = NoFlow
		b.Cursor = next
		return MoveCompleted

	default:
		return MoveBlocked
	}
}

// setExit points the outgoing direction of the Entry or Line at c toward d.
func (b *Board) setExit(c Coord, d Dir) {
	cell := b.Grid.Get(c)
	if cell.IsEmpty() {
		invariant("set exit %s on empty cell at %v", d, c)
	}
	cell.To = d
	b.Grid.Set(c, cell)
}

// ClearLine walks forward from start along d, resetting every Line it visits
// to Empty. If the walk ends at an Entry, that Entry's exit is cleared. The
// cell at start itself is not modified. The walk stops at the first cell
// with no exit and never takes more than W*H steps.
func (b *Board) ClearLine(start Coord, d Dir) {
	g := b.Grid
	at := start
	for steps := 0; d != DirNone; steps++ {
		if steps >= len(g.Cells) {
			invariant("path from %v does not terminate", start)
		}
		at = at.Step(d)
		if !g.InBounds(at) {
			invariant("path from %v leaves the grid at %v", start, at)
		}
		cell := g.Get(at)
		switch cell.Kind {
		case KindLine:
			d = cell.To
			g.Set(at, Empty())
		case KindEntry:
			cell.To = DirNone
			g.Set(at, cell)
			d = DirNone
		default:
			invariant("path from %v runs into empty cell at %v", start, at)
		}
	}
}

// pathStart finds the Entry of the flow at c from which the drawn path
// originates. The second result is false when the flow has nothing drawn.
func (b *Board) pathStart(c Coord) (Coord, bool) {
	g := b.Grid
	cell := g.Get(c)
	other, paired := g.OtherEndpoint(c)

	if cell.To != DirNone {
		if b.leaves(c) {
			return c, true
		}
		if !paired || g.Get(other).To == DirNone {
			invariant("entry at %v is the end of a path with no start", c)
		}
		return other, true
	}
	if paired && g.Get(other).To != DirNone {
		return other, true
	}
	return Coord{}, false
}

// leaves reports whether the path through the Entry at c starts there, that
// is, the neighbour along its exit links back to it as a predecessor.
func (b *Board) leaves(c Coord) bool {
	d := b.Grid.Get(c).To
	n := c.Step(d)
	if !b.Grid.InBounds(n) {
		invariant("entry at %v exits the grid toward %s", c, d)
	}
	next := b.Grid.Get(n)
	switch next.Kind {
	case KindLine:
		return next.From == d.Opposite()
	case KindEntry:
		// Adjacent partner entries: either end can own the segment.
		return true
	default:
		invariant("entry at %v exits into empty cell at %v", c, n)
		return false
	}
}

// clearFlow removes the whole drawn path of the flow owning the Entry at c,
// leaving both entries unconnected.
func (b *Board) clearFlow(c Coord) {
	start, ok := b.pathStart(c)
	if !ok {
		return
	}
	cell := b.Grid.Get(start)
	d := cell.To
	cell.To = DirNone
	b.Grid.Set(start, cell)
	b.ClearLine(start, d)
}
