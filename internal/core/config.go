package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	LevelID string // Level to start on; empty means the first one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LevelID string // Level being played
	Moves   int    // Path edits made on this level
	Solved  bool   // Whether the puzzle is complete
	Paused  bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State GameState
	// JustSolved is set only on the step that completed the puzzle.
	JustSolved bool
}
