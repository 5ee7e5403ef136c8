package flow_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
)

var dirActions = map[rune]core.Action{
	'N': core.ActionUp,
	'E': core.ActionRight,
	'S': core.ActionDown,
	'W': core.ActionLeft,
}

// classicRoutes solves the 03-classic level.
var classicRoutes = []struct {
	start board.Coord
	dirs  string
}{
	{board.C(2, 2), "EESS"},
	{board.C(3, 3), "WWS"},
	{board.C(5, 4), "SWW"},
	{board.C(1, 2), "NEEEESS"},
	{board.C(5, 0), "WWWWWSSSSSEENE"},
}

func newGame(t *testing.T, levelID string) *flow.Game {
	t.Helper()
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)

	g := flow.New(lvls)
	cfg := core.DefaultConfig()
	cfg.LevelID = levelID
	g.Reset(cfg)
	return g
}

func press(g *flow.Game, actions ...core.Action) core.StepResult {
	return g.Step(core.FrameOf(actions...))
}

// walkTo moves the cursor with no flow active.
func walkTo(t *testing.T, g *flow.Game, c board.Coord) {
	t.Helper()
	for g.Board().Cursor != c {
		cur := g.Board().Cursor
		switch {
		case cur.X < c.X:
			press(g, core.ActionRight)
		case cur.X > c.X:
			press(g, core.ActionLeft)
		case cur.Y < c.Y:
			press(g, core.ActionDown)
		default:
			press(g, core.ActionUp)
		}
		require.NotEqual(t, cur, g.Board().Cursor, "cursor stuck at %v", cur)
	}
}

func solveClassic(t *testing.T, g *flow.Game) []core.StepResult {
	t.Helper()
	var results []core.StepResult
	for _, r := range classicRoutes {
		walkTo(t, g, r.start)
		press(g, core.ActionConfirm)
		for _, ch := range r.dirs {
			results = append(results, press(g, dirActions[ch]))
		}
	}
	return results
}

func TestResetSelectsLevel(t *testing.T) {
	g := newGame(t, "03-classic")

	lvl, ok := g.Level()
	require.True(t, ok)
	assert.Equal(t, "03-classic", lvl.ID)
	assert.Equal(t, "03-classic", g.State().LevelID)

	g = newGame(t, "no-such-level")
	lvl, _ = g.Level()
	assert.Equal(t, "01-warmup", lvl.ID)
}

func TestSelectLevel(t *testing.T) {
	g := newGame(t, "")

	require.NoError(t, g.SelectLevel("04-detour"))
	assert.Equal(t, "04-detour", g.State().LevelID)

	err := g.SelectLevel("nope")
	assert.ErrorIs(t, err, levels.ErrLevelNotFound)
	assert.Equal(t, "04-detour", g.State().LevelID)
}

func TestSolveClassic(t *testing.T) {
	g := newGame(t, "03-classic")

	var solvedEvents []int
	g.SetHooks(flow.Hooks{
		OnSolved: func(levelID string, moves int) {
			assert.Equal(t, "03-classic", levelID)
			solvedEvents = append(solvedEvents, moves)
		},
	})

	results := solveClassic(t, g)
	last := results[len(results)-1]

	assert.True(t, last.JustSolved)
	for _, r := range results[:len(results)-1] {
		assert.False(t, r.JustSolved)
	}
	assert.Equal(t, core.GameState{LevelID: "03-classic", Moves: 31, Solved: true}, last.State)
	assert.Equal(t, []int{31}, solvedEvents)

	// Further input is ignored once solved.
	res := press(g, core.ActionLeft)
	assert.False(t, res.JustSolved)
	assert.Equal(t, 31, res.State.Moves)
}

func TestReleaseAndResumeBeforeLastMove(t *testing.T) {
	g := newGame(t, "03-classic")

	last := classicRoutes[len(classicRoutes)-1]
	for _, r := range classicRoutes[:len(classicRoutes)-1] {
		walkTo(t, g, r.start)
		press(g, core.ActionConfirm)
		for _, ch := range r.dirs {
			press(g, dirActions[ch])
		}
	}
	walkTo(t, g, last.start)
	press(g, core.ActionConfirm)
	for _, ch := range last.dirs[:len(last.dirs)-1] {
		press(g, dirActions[ch])
	}

	assert.False(t, press(g, core.ActionConfirm).JustSolved, "release")
	assert.False(t, press(g, core.ActionConfirm).JustSolved, "resume from head")
	assert.Equal(t, board.FlowID(4), g.Board().Active)

	res := press(g, dirActions[rune(last.dirs[len(last.dirs)-1])])
	assert.True(t, res.JustSolved)
	assert.Equal(t, 31, res.State.Moves)
}

func TestMovesCountOnlyPathEdits(t *testing.T) {
	g := newGame(t, "03-classic")

	var results []board.MoveResult
	g.SetHooks(flow.Hooks{
		OnMove: func(_ string, r board.MoveResult) {
			results = append(results, r)
		},
	})

	walkTo(t, g, board.C(2, 2))
	assert.Zero(t, g.State().Moves, "cursor moves are free")

	press(g, core.ActionConfirm)
	press(g, core.ActionRight)  // extended
	press(g, core.ActionLeft)   // retracted
	press(g, core.ActionLeft)   // blocked by D
	press(g, core.ActionUp)     // extended
	press(g, core.ActionUp)     // extended
	press(g, core.ActionUp)     // out of bounds

	assert.Equal(t, 4, g.State().Moves)
	assert.Equal(t, []board.MoveResult{
		board.MoveExtended, board.MoveRetracted, board.MoveBlocked,
		board.MoveExtended, board.MoveExtended, board.MoveOutOfBounds,
	}, results)
}

func TestRestart(t *testing.T) {
	g := newGame(t, "03-classic")
	walkTo(t, g, board.C(2, 2))
	press(g, core.ActionConfirm)
	press(g, core.ActionRight)
	require.Equal(t, 1, g.State().Moves)

	press(g, core.ActionRestart)

	assert.Equal(t, core.GameState{LevelID: "03-classic"}, g.State())
	assert.Equal(t, board.C(0, 0), g.Board().Cursor)
	assert.False(t, g.Board().HasActive())
	assert.True(t, g.Board().Cell(board.C(3, 2)).IsEmpty())
}

func TestRestartAfterSolve(t *testing.T) {
	g := newGame(t, "03-classic")
	solveClassic(t, g)
	require.True(t, g.State().Solved)

	press(g, core.ActionRestart)
	assert.False(t, g.State().Solved)
	assert.False(t, g.Board().Solved())
}

func TestPauseBlocksInput(t *testing.T) {
	g := newGame(t, "03-classic")

	res := press(g, core.ActionPause)
	assert.True(t, res.State.Paused)

	press(g, core.ActionRight)
	assert.Equal(t, board.C(0, 0), g.Board().Cursor)

	res = press(g, core.ActionPause)
	assert.False(t, res.State.Paused)
	press(g, core.ActionRight)
	assert.Equal(t, board.C(1, 0), g.Board().Cursor)
}

func TestRender(t *testing.T) {
	g := newGame(t, "03-classic")
	walkTo(t, g, board.C(2, 2))
	press(g, core.ActionConfirm)
	press(g, core.ActionRight)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Flow | 3/6 Classic | Flows: 0/5 | Moves: 1")
	assert.Contains(t, out, "Drawing A")

	// The board rows match the plain renderer.
	ascii := strings.Split(strings.TrimSuffix(board.RenderASCII(g.Board()), "\n"), "\n")
	for _, line := range ascii[1:] {
		assert.Contains(t, out, line)
	}
	assert.Contains(t, out, "┐A")
}

func TestRenderColorsFlows(t *testing.T) {
	g := newGame(t, "03-classic")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Find the E entry of the top row and check its color.
	for y := 0; y < screen.Height(); y++ {
		row := []rune(screen.Row(y))
		for x, r := range row {
			if r == 'E' && y > 3 {
				cell := screen.GetCell(x, y)
				assert.Equal(t, flow.FlowColor(4), cell.Color)
				assert.True(t, cell.Bold)
				return
			}
		}
	}
	t.Fatal("entry E not rendered")
}

func TestRenderOverlays(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		g := newGame(t, "06-marathon")
		g.Resize(40, 8)
		screen := core.NewScreen(40, 8)
		g.Render(screen)
		assert.Contains(t, screen.String(), "Window too")

		press(g, core.ActionRight)
		assert.Equal(t, board.C(0, 0), g.Board().Cursor, "input ignored while too small")
	})

	t.Run("solved", func(t *testing.T) {
		g := newGame(t, "03-classic")
		solveClassic(t, g)
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		assert.Contains(t, screen.String(), "Solved!")
	})

	t.Run("no levels", func(t *testing.T) {
		g := flow.New(nil)
		g.Reset(core.DefaultConfig())
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		assert.Contains(t, screen.String(), "No levels found")
		assert.Equal(t, core.GameState{}, press(g, core.ActionConfirm).State)
	})
}

func TestSnapshot(t *testing.T) {
	g := newGame(t, "01-warmup")
	press(g, core.ActionConfirm)
	press(g, core.ActionDown)

	snap := g.Snapshot()
	assert.Equal(t, "01-warmup", snap.LevelID)
	assert.Equal(t, board.C(0, 1), snap.Cursor)
	assert.Equal(t, board.FlowID(0), snap.Active)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, 3, snap.Flows)
	assert.Equal(t, board.RenderASCII(g.Board()), snap.Board)
	assert.True(t, strings.HasPrefix(snap.Text(), "level: 01-warmup\nmoves: 1  flows: 0/3\n┌"))
}
