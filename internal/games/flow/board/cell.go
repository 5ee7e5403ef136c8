package board

// FlowID identifies a flow. Flows are displayed as letters starting at 'A'.
type FlowID int

// NoFlow is the FlowID used when no flow is selected.
const NoFlow FlowID = -1

// MaxFlows is the number of distinct flow letters a level can use.
const MaxFlows = 26

// Letter returns the display letter for the flow, or '-' for NoFlow.
func (f FlowID) Letter() rune {
	if f < 0 || f >= MaxFlows {
		return '-'
	}
	return 'A' + rune(f)
}

// String returns the flow letter as a string.
func (f FlowID) String() string {
	return string(f.Letter())
}

// FlowFromLetter maps an uppercase letter to its FlowID.
func FlowFromLetter(r rune) (FlowID, bool) {
	if r < 'A' || r > 'Z' {
		return NoFlow, false
	}
	return FlowID(r - 'A'), true
}

// CellKind tags the variant held by a Cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindEntry
	KindLine
)

// String returns the name of the kind.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindEntry:
		return "Entry"
	case KindLine:
		return "Line"
	default:
		return "Unknown"
	}
}

// Cell represents a single grid position.
//
// Empty cells carry no flow. An Entry is a flow endpoint; To is the direction
// its path leaves toward, or DirNone when unconnected. A Line is an interior
// path cell; From is the direction the path arrived from and To the direction
// it continues to, or DirNone when the cell is the open end of the path.
type Cell struct {
	Kind CellKind
	Flow FlowID
	From Dir // Lines only
	To   Dir
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty, Flow: NoFlow}
}

// Entry returns an unconnected endpoint of the given flow.
func Entry(flow FlowID) Cell {
	return Cell{Kind: KindEntry, Flow: flow}
}

// Line returns a path head of the given flow arriving from the given direction.
func Line(flow FlowID, from Dir) Cell {
	return Cell{Kind: KindLine, Flow: flow, From: from}
}

// IsEmpty returns true for Empty cells.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// IsEntry returns true for Entry cells.
func (c Cell) IsEntry() bool {
	return c.Kind == KindEntry
}

// IsLine returns true for Line cells.
func (c Cell) IsLine() bool {
	return c.Kind == KindLine
}

// Value returns the flow carried by the cell. The second result is false
// for Empty cells.
func (c Cell) Value() (FlowID, bool) {
	if c.Kind == KindEmpty {
		return NoFlow, false
	}
	return c.Flow, true
}

// Carries reports whether the cell is an Entry or Line of the given flow.
func (c Cell) Carries(flow FlowID) bool {
	f, ok := c.Value()
	return ok && f == flow
}

// Exit returns the outgoing direction of an Entry or Line.
func (c Cell) Exit() Dir {
	if c.Kind == KindEmpty {
		return DirNone
	}
	return c.To
}

// IsHead reports whether the cell is a Line with no continuation.
func (c Cell) IsHead() bool {
	return c.Kind == KindLine && c.To == DirNone
}

// Connects reports whether a path segment leaves the cell toward d.
// Lines connect both ways; entries only along their exit.
func (c Cell) Connects(d Dir) bool {
	if !d.Valid() {
		return false
	}
	switch c.Kind {
	case KindLine:
		return c.To == d || c.From == d
	case KindEntry:
		return c.To == d
	default:
		return false
	}
}
