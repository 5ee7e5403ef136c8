package board

// Grid represents the puzzle as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Cells []Cell // Flat array of cells, length W*H
}

// NewGrid creates a grid of the given dimensions with every cell empty.
func NewGrid(w, h int) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
	for i := range g.Cells {
		g.Cells[i] = Empty()
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell at the given coordinate.
// The coordinate must be in bounds.
func (g *Grid) Get(c Coord) Cell {
	return g.Cells[g.index(c)]
}

// Set replaces the cell at the given coordinate.
// The coordinate must be in bounds.
func (g *Grid) Set(c Coord, cell Cell) {
	g.Cells[g.index(c)] = cell
}

// Coord converts a flat index back to a coordinate.
func (g *Grid) Coord(i int) Coord {
	return C(i%g.W, i/g.W)
}

// OtherEndpoint returns the coordinate of the other Entry sharing the flow
// of the Entry at c. The second result is false if c is not an Entry or the
// flow has no partner.
func (g *Grid) OtherEndpoint(c Coord) (Coord, bool) {
	cell := g.Get(c)
	if !cell.IsEntry() {
		return Coord{}, false
	}
	for i, other := range g.Cells {
		oc := g.Coord(i)
		if oc != c && other.IsEntry() && other.Flow == cell.Flow {
			return oc, true
		}
	}
	return Coord{}, false
}

// Entries returns the coordinates of every Entry of the given flow,
// in row-major order.
func (g *Grid) Entries(flow FlowID) []Coord {
	var coords []Coord
	for i, cell := range g.Cells {
		if cell.IsEntry() && cell.Flow == flow {
			coords = append(coords, g.Coord(i))
		}
	}
	return coords
}

// Flows returns the distinct flow ids that have at least one Entry,
// in ascending order.
func (g *Grid) Flows() []FlowID {
	var seen [MaxFlows]bool
	for _, cell := range g.Cells {
		if cell.IsEntry() && cell.Flow >= 0 && cell.Flow < MaxFlows {
			seen[cell.Flow] = true
		}
	}
	var flows []FlowID
	for f, ok := range seen {
		if ok {
			flows = append(flows, FlowID(f))
		}
	}
	return flows
}

// EmptyCount returns the number of Empty cells.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.IsEmpty() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
