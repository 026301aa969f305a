package blackbox

import "github.com/vovakirdan/tui-blackbox/internal/core"

// StatusType represents the current session status.
type StatusType string

const (
	StatusPlaying     StatusType = "playing"
	StatusSolved      StatusType = "solved"
	StatusRevealed    StatusType = "revealed"
	StatusPausedSmall StatusType = "paused_small_window"
)

// Snapshot captures the session state for determinism testing and replay.
type Snapshot struct {
	Layout         string
	Seed           int64
	Cursor         core.Coord
	Score          int
	AtomsRemaining int
	Rays           int
	Entries        []core.Coord
	Exits          []core.Coord
	Guesses        []core.Coord
	Status         StatusType
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case s.tooSmall:
		status = StatusPausedSmall
	case s.solved:
		status = StatusSolved
	case s.revealed:
		status = StatusRevealed
	}

	snap := Snapshot{
		Layout: s.layout.ID(),
		Seed:   s.seed,
		Cursor: s.cursor,
		Rays:   len(s.shots),
		Status: status,
	}
	if s.game != nil {
		snap.Score = s.game.Score()
		snap.AtomsRemaining = s.game.AtomsRemaining()
		snap.Entries = s.game.Entries()
		snap.Exits = s.game.Exits()
		snap.Guesses = s.game.Guesses()
	}
	return snap
}

// WrongGuesses returns the number of distinct incorrect guesses.
func (s *Session) WrongGuesses() int {
	return len(s.wrong)
}
