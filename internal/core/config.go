package core

// RuntimeConfig contains configuration passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for random layouts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score          int  // Current score
	AtomsRemaining int  // Atoms not yet found
	GameOver       bool // Whether the session has ended
	Solved         bool // Whether every atom was found
}

// StepResult is returned by Step() after each processed input frame.
type StepResult struct {
	State GameState
}
