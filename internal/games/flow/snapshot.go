package flow

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
)

// Snapshot is a deterministic copy of everything a session shows.
type Snapshot struct {
	LevelID   string
	Board     string // board.RenderASCII output
	Cursor    board.Coord
	Active    board.FlowID
	Moves     int
	Connected int
	Flows     int
	Solved    bool
	Paused    bool
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		LevelID: g.levelID(),
		Moves:   g.moves,
		Solved:  g.solved,
		Paused:  g.paused,
		Active:  board.NoFlow,
	}
	if g.board != nil {
		s.Board = board.RenderASCII(g.board)
		s.Cursor = g.board.Cursor
		s.Active = g.board.Active
		s.Connected, s.Flows = g.board.FlowStats()
	}
	return s
}

// Text renders the snapshot as a plain-text screenshot.
func (s Snapshot) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "level: %s\n", s.LevelID)
	fmt.Fprintf(&sb, "moves: %d  flows: %d/%d", s.Moves, s.Connected, s.Flows)
	if s.Solved {
		sb.WriteString("  solved")
	}
	sb.WriteByte('\n')
	sb.WriteString(s.Board)
	return sb.String()
}
