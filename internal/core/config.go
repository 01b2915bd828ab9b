package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to lay themselves out on the terminal.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
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
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether it ended in a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each player turn.
type StepResult struct {
	State GameState

	// Moved is true when the input consumed a turn.
	Moved bool
}
