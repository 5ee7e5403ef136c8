package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
)

func TestParseSample(t *testing.T) {
	g, err := board.ParseString(sampleLevel)
	require.NoError(t, err)

	assert.Equal(t, 6, g.W)
	assert.Equal(t, 6, g.H)
	assert.Len(t, g.Cells, 36)
	assert.Equal(t, []board.FlowID{0, 1, 2, 3, 4}, g.Flows())
	for _, f := range g.Flows() {
		assert.Len(t, g.Entries(f), 2, "flow %s", f)
	}
	assert.Equal(t, board.Entry(4), g.Get(board.C(5, 0)))
	assert.Equal(t, board.Entry(3), g.Get(board.C(1, 2)))
	assert.True(t, g.Get(board.C(0, 0)).IsEmpty())
	assert.NoError(t, board.Validate(g))
}

func TestParseLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		w, h  int
	}{
		{"single row", "A.A", 3, 1},
		{"trailing newline", "A.\n.A\n", 2, 2},
		{"crlf", "A.\r\n.A\r\n", 2, 2},
		{"crlf without trailing newline", "AB\r\nAB", 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := board.ParseString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.w, g.W)
			assert.Equal(t, tc.h, g.H)
			assert.Len(t, g.Cells, tc.w*tc.h)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only newline", "\n"},
		{"lowercase letter", "a..a"},
		{"digit", "A1A"},
		{"space", "A A"},
		{"short row", "A..\n.A"},
		{"long row", "A.\n..A"},
		{"blank middle row", "A.\n\n.A"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := board.ParseString(tc.input)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, board.ErrMalformedLevel)
		})
	}
}

func TestParseDoesNotCheckPairing(t *testing.T) {
	g, err := board.ParseString("A..")
	require.NoError(t, err)
	assert.Equal(t, []board.FlowID{0}, g.Flows())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		wantErr error
	}{
		{"valid", "A.B\n...\nA.B", nil},
		{"no flows", "...\n...", board.ErrNoFlows},
		{"single entry", "A..\n..B\nB..", board.ErrUnpairedFlow},
		{"three entries", "A.A\n.A.", board.ErrUnpairedFlow},
		{"gap", "A.A\n...\nC.C", board.ErrFlowGap},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := board.ParseString(tc.layout)
			require.NoError(t, err)

			err = board.Validate(g)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestComputeStats(t *testing.T) {
	g, err := board.ParseString(sampleLevel)
	require.NoError(t, err)

	assert.Equal(t, board.Stats{
		Width:      6,
		Height:     6,
		TotalCells: 36,
		Flows:      5,
		EmptyCells: 26,
	}, board.ComputeStats(g))
}

func TestRenderLayoutRoundTrip(t *testing.T) {
	b := newBoard(t, sampleLevel)
	drawRoute(t, b, sampleSolution[0])

	assert.Equal(t, sampleLevel, board.RenderLayout(b.Grid))

	again, err := board.ParseString(board.RenderLayout(b.Grid))
	require.NoError(t, err)
	assert.Equal(t, 6, again.W)
}

func TestDirections(t *testing.T) {
	tests := []struct {
		dir      board.Dir
		opposite board.Dir
		offset   board.Coord
	}{
		{board.North, board.South, board.C(0, -1)},
		{board.East, board.West, board.C(1, 0)},
		{board.South, board.North, board.C(0, 1)},
		{board.West, board.East, board.C(-1, 0)},
		{board.DirNone, board.DirNone, board.C(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			assert.Equal(t, tc.opposite, tc.dir.Opposite())
			assert.Equal(t, tc.dir, tc.dir.Opposite().Opposite())
			assert.Equal(t, tc.offset, tc.dir.Offset())
			assert.Equal(t, board.C(3, 3).Add(tc.offset), board.C(3, 3).Step(tc.dir))
		})
	}
}

func TestFlowLetters(t *testing.T) {
	f, ok := board.FlowFromLetter('C')
	require.True(t, ok)
	assert.Equal(t, board.FlowID(2), f)
	assert.Equal(t, 'C', f.Letter())

	_, ok = board.FlowFromLetter('c')
	assert.False(t, ok)
	assert.Equal(t, '-', board.NoFlow.Letter())
}
