package board

import (
	"errors"
	"fmt"
)

// Validation errors returned by Validate.
var (
	ErrNoFlows      = errors.New("level has no flows")
	ErrUnpairedFlow = errors.New("flow does not have exactly two entries")
	ErrFlowGap      = errors.New("flow letters are not contiguous from A")
)

// Validate checks the level preconditions the play engine relies on:
// at least one flow, exactly two entries per flow, and flow letters used
// contiguously starting at 'A'.
func Validate(g *Grid) error {
	var counts [MaxFlows]int
	for _, cell := range g.Cells {
		if !cell.IsEntry() {
			continue
		}
		if cell.Flow < 0 || cell.Flow >= MaxFlows {
			return fmt.Errorf("%w: flow id %d out of range", ErrMalformedLevel, cell.Flow)
		}
		counts[cell.Flow]++
	}

	flows := g.Flows()
	if len(flows) == 0 {
		return ErrNoFlows
	}

	for _, f := range flows {
		if counts[f] != 2 {
			return fmt.Errorf("%w: %s has %d", ErrUnpairedFlow, f, counts[f])
		}
	}

	for i, f := range flows {
		if f != FlowID(i) {
			return fmt.Errorf("%w: missing %s", ErrFlowGap, FlowID(i))
		}
	}

	return nil
}

// Stats summarizes a grid for listings and diagnostics.
type Stats struct {
	Width      int
	Height     int
	TotalCells int
	Flows      int
	EmptyCells int
}

// ComputeStats analyzes a grid and returns statistics.
func ComputeStats(g *Grid) Stats {
	return Stats{
		Width:      g.W,
		Height:     g.H,
		TotalCells: g.W * g.H,
		Flows:      len(g.Flows()),
		EmptyCells: g.EmptyCount(),
	}
}
