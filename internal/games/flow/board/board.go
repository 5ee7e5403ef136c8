package board

// ToggleResult describes what a select/confirm event did.
type ToggleResult uint8

const (
	// ToggleIgnored means the cursor is not on a selectable cell.
	ToggleIgnored ToggleResult = iota
	// ToggleGrabbed means a flow became active at the cursor.
	ToggleGrabbed
	// ToggleReleased means the active flow was deselected; its path is kept.
	ToggleReleased
)

// String returns the name of the result.
func (r ToggleResult) String() string {
	switch r {
	case ToggleIgnored:
		return "ignored"
	case ToggleGrabbed:
		return "grabbed"
	case ToggleReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Board is a grid plus the transient selection state of a play session:
// the highlighted cell and the flow currently being drawn.
// It processes one event at a time and is not safe for concurrent use.
type Board struct {
	Grid   *Grid
	Cursor Coord  // Highlighted cell
	Active FlowID // Flow being drawn, or NoFlow
}

// NewBoard creates a board over the grid with the cursor at the origin
// and no active flow.
func NewBoard(g *Grid) *Board {
	return &Board{
		Grid:   g,
		Cursor: C(0, 0),
		Active: NoFlow,
	}
}

// HasActive reports whether a flow is being drawn.
func (b *Board) HasActive() bool {
	return b.Active != NoFlow
}

// Move handles a directional event. Moves leaving the grid are rejected.
// With no active flow only the cursor moves; otherwise the active path is
// extended, retracted, completed or blocked.
func (b *Board) Move(d Dir) MoveResult {
	if !d.Valid() {
		return MoveBlocked
	}
	next := b.Cursor.Step(d)
	if !b.Grid.InBounds(next) {
		return MoveOutOfBounds
	}
	if !b.HasActive() {
		b.Cursor = next
		return MoveCursor
	}
	return b.draw(d)
}

// Toggle handles a select/confirm event.
//
// With a flow active, the flow is released and its partial path kept.
// Otherwise, selecting an Entry clears whatever is drawn of its flow and
// makes it active from that Entry; selecting a path head resumes drawing
// from the head. Any other cell is ignored.
func (b *Board) Toggle() ToggleResult {
	if b.HasActive() {
		b.Active = NoFlow
		return ToggleReleased
	}

	cell := b.Grid.Get(b.Cursor)
	switch {
	case cell.IsEntry():
		b.clearFlow(b.Cursor)
		b.Active = cell.Flow
		return ToggleGrabbed
	case cell.IsHead():
		b.Active = cell.Flow
		return ToggleGrabbed
	default:
		return ToggleIgnored
	}
}

// Solved reports whether every cell is covered and every Entry connected.
func (b *Board) Solved() bool {
	for _, cell := range b.Grid.Cells {
		switch {
		case cell.IsEmpty():
			return false
		case cell.IsEntry() && cell.To == DirNone:
			return false
		}
	}
	return true
}

// Connected reports whether the flow's entries are joined by a complete path.
func (b *Board) Connected(flow FlowID) bool {
	entries := b.Grid.Entries(flow)
	if len(entries) != 2 {
		return false
	}
	for _, c := range entries {
		if b.Grid.Get(c).To == DirNone {
			return false
		}
	}
	return true
}

// FlowStats returns how many flows are connected and how many exist.
func (b *Board) FlowStats() (connected, total int) {
	for _, f := range b.Grid.Flows() {
		total++
		if b.Connected(f) {
			connected++
		}
	}
	return connected, total
}

// Cell returns the cell at c. The coordinate must be in bounds.
func (b *Board) Cell(c Coord) Cell {
	return b.Grid.Get(c)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		Grid:   b.Grid.Clone(),
		Cursor: b.Cursor,
		Active: b.Active,
	}
}

// Equal returns true if both boards have the same cells and selection.
func (b *Board) Equal(other *Board) bool {
	return b.Cursor == other.Cursor && b.Active == other.Active && b.Grid.Equal(other.Grid)
}
