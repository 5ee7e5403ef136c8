// Package board provides the puzzle state machine for Flow: the grid model,
// path drawing and retraction, endpoint pairing and the win check.
// This package is UI-agnostic and deterministic.
package board

// Dir represents one of the four grid directions.
// The zero value DirNone means "no direction" (an unset exit).
type Dir uint8

const (
	DirNone Dir = iota
	North
	East
	South
	West
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "None"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Offset returns the unit coordinate offset of the direction.
func (d Dir) Offset() Coord {
	dx, dy := d.Delta()
	return C(dx, dy)
}

// Opposite returns the opposite direction. DirNone is its own opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return DirNone
	}
}

// Valid reports whether d is one of the four real directions.
func (d Dir) Valid() bool {
	return d >= North && d <= West
}
