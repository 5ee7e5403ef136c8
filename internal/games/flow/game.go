// Package flow provides the Flow path-drawing puzzle game.
// The game holds one play session over a list of levels; the puzzle rules
// live in the board package.
package flow

import (
	"fmt"

	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
)

// Hooks are optional callbacks fired while the game processes input.
// They let the platform count moves and solves without the game knowing
// about metrics or storage.
type Hooks struct {
	OnMove   func(levelID string, result board.MoveResult)
	OnSolved func(levelID string, moves int)
}

// Game implements the Flow puzzle for one player.
type Game struct {
	levels     []levels.Level
	levelIndex int
	board      *board.Board
	hooks      Hooks

	// Screen dimensions
	screenW int
	screenH int

	// Status
	moves    int
	solved   bool
	paused   bool
	tooSmall bool
	status   string

	// Calculated offsets of the board frame
	boardX int
	boardY int
}

const (
	hudHeight    = 4
	statusHeight = 2
)

// New creates a game over the given levels.
func New(lvls []levels.Level) *Game {
	return &Game{levels: lvls}
}

// SetHooks installs input callbacks.
func (g *Game) SetHooks(h Hooks) {
	g.hooks = h
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "flow"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flow"
}

// Reset starts the level named by cfg.LevelID, or the first level.
// An unknown id falls back to the first level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.levelIndex = 0
	if i := g.indexOf(cfg.LevelID); i >= 0 {
		g.levelIndex = i
	}
	g.loadCurrentLevel()
}

// SelectLevel switches to the level with the given id.
func (g *Game) SelectLevel(id string) error {
	i := g.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", levels.ErrLevelNotFound, id)
	}
	g.levelIndex = i
	g.loadCurrentLevel()
	return nil
}

// Resize updates the screen dimensions and recomputes the layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

func (g *Game) indexOf(id string) int {
	for i, l := range g.levels {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// loadCurrentLevel puts a fresh board for the current level in play.
func (g *Game) loadCurrentLevel() {
	g.moves = 0
	g.solved = false
	g.paused = false
	g.status = ""
	g.board = nil

	if g.levelIndex >= len(g.levels) {
		return
	}
	g.board = g.levels[g.levelIndex].NewBoard()
	g.calculateLayout()
}

// calculateLayout centers the board frame below the HUD.
func (g *Game) calculateLayout() {
	if g.board == nil {
		return
	}
	frameW, frameH := frameSize(g.board.Grid)
	neededH := hudHeight + frameH + statusHeight

	if g.screenW < frameW || g.screenH < neededH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardX = (g.screenW - frameW) / 2
	g.boardY = hudHeight + (g.screenH-neededH)/2
}

// Level returns the level being played. ok is false when there are none.
func (g *Game) Level() (levels.Level, bool) {
	if g.levelIndex >= len(g.levels) {
		return levels.Level{}, false
	}
	return g.levels[g.levelIndex], true
}

// Board returns the board in play, or nil when no level is loaded.
// Callers must treat it as read-only.
func (g *Game) Board() *board.Board {
	return g.board
}

// Step processes one input event to completion.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.board == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.loadCurrentLevel()
		g.status = "Level restarted"
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.solved {
		g.paused = !g.paused
	}

	if g.solved || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft} {
		if input.Has(a) {
			g.move(actionDir(a))
		}
	}
	if input.Has(core.ActionConfirm) {
		g.toggle()
	}

	result := core.StepResult{}
	if g.board.Solved() {
		g.solved = true
		g.status = "Solved in " + plural(g.moves, "move")
		result.JustSolved = true
		if g.hooks.OnSolved != nil {
			g.hooks.OnSolved(g.levelID(), g.moves)
		}
	}
	result.State = g.State()
	return result
}

func (g *Game) move(d board.Dir) {
	res := g.board.Move(d)
	if res.Mutated() {
		g.moves++
	}
	if g.hooks.OnMove != nil && res != board.MoveCursor {
		g.hooks.OnMove(g.levelID(), res)
	}

	switch res {
	case board.MoveBlocked:
		g.status = "Blocked"
	case board.MoveCompleted:
		g.status = "Connected " + g.board.Cell(g.board.Cursor).Flow.String()
	case board.MoveExtended, board.MoveRetracted:
		g.status = "Drawing " + g.board.Active.String()
	case board.MoveCursor, board.MoveOutOfBounds:
		g.status = ""
	}
}

func (g *Game) toggle() {
	switch g.board.Toggle() {
	case board.ToggleGrabbed:
		g.status = "Drawing " + g.board.Active.String()
	case board.ToggleReleased:
		g.status = "Released"
	case board.ToggleIgnored:
		g.status = ""
	}
}

func (g *Game) levelID() string {
	if l, ok := g.Level(); ok {
		return l.ID
	}
	return ""
}

// actionDir maps a direction action to a board direction.
func actionDir(a core.Action) board.Dir {
	switch a {
	case core.ActionUp:
		return board.North
	case core.ActionRight:
		return board.East
	case core.ActionDown:
		return board.South
	case core.ActionLeft:
		return board.West
	default:
		return board.DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		LevelID: g.levelID(),
		Moves:   g.moves,
		Solved:  g.solved,
		Paused:  g.paused,
	}
}

// SetStatus replaces the message shown below the board until the next
// action.
func (g *Game) SetStatus(msg string) {
	g.status = msg
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
