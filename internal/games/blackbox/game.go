package blackbox

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-blackbox/internal/core"
)

// Scoring constants.
const (
	StartingScore     = 25
	NewCellPenalty    = 1 // per entry or exit cell not seen before
	WrongGuessPenalty = 5 // per incorrect guess not made before
)

var (
	// ErrInvalidPlacement is returned by New when an atom lies outside the
	// interior of the board.
	ErrInvalidPlacement = errors.New("blackbox: atom outside the board interior")

	// ErrInvalidOrigin describes a shot from a corner or a non-border cell.
	// ShootRay reports it as RayInvalid; see RayResult.Err.
	ErrInvalidOrigin = errors.New("blackbox: ray origin is not a border cell")
)

// Game is a single Black Box game: a fixed atom placement plus the score and
// the shot and guess history. It is not safe for concurrent use; callers that
// share a Game between goroutines must serialize access to it.
type Game struct {
	board *Board
	atoms map[core.Coord]struct{}
	order []core.Coord // distinct atoms, sorted

	score          int
	atomsRemaining int
	entries        []core.Coord
	exits          []core.Coord
	guesses        []core.Coord
}

// New creates a game with atoms at the given coordinates.
// Every atom must be an interior cell. Duplicate coordinates count once.
func New(atoms []core.Coord) (*Game, error) {
	for _, a := range atoms {
		if !a.IsInterior() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPlacement, a)
		}
	}
	return newGame(atoms), nil
}

// newGame builds a game without validating the placement.
func newGame(atoms []core.Coord) *Game {
	g := &Game{
		board: NewBoard(),
		atoms: make(map[core.Coord]struct{}, len(atoms)),
		score: StartingScore,
	}

	for _, a := range atoms {
		if _, dup := g.atoms[a]; dup {
			continue
		}
		g.atoms[a] = struct{}{}
		g.order = append(g.order, a)
		g.board.PlaceAtom(a)
	}
	slices.SortFunc(g.order, compareCoords)
	g.atomsRemaining = len(g.order)

	return g
}

func compareCoords(a, b core.Coord) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// Score returns the current score. It starts at StartingScore and has no floor.
func (g *Game) Score() int {
	return g.score
}

// AtomsRemaining returns the number of atoms not yet guessed.
func (g *Game) AtomsRemaining() int {
	return g.atomsRemaining
}

// Board returns the game board. Atoms are marked on it.
func (g *Game) Board() *Board {
	return g.board
}

// Atoms returns the distinct atom coordinates in row-major order.
func (g *Game) Atoms() []core.Coord {
	return slices.Clone(g.order)
}

// IsAtom reports whether c holds an atom.
func (g *Game) IsAtom(c core.Coord) bool {
	_, ok := g.atoms[c]
	return ok
}

// Entries returns the border cells rays were first fired from, in order.
func (g *Game) Entries() []core.Coord {
	return slices.Clone(g.entries)
}

// Exits returns the border cells rays left the board at, in order.
func (g *Game) Exits() []core.Coord {
	return slices.Clone(g.exits)
}

// Guesses returns every guess made, correct or not, in order.
func (g *Game) Guesses() []core.Coord {
	return slices.Clone(g.guesses)
}

// GuessAtom checks for an atom at (row, col).
//
// A correct guess decrements the atoms remaining and returns true. Guessing
// the same atom again decrements it again. A wrong guess costs
// WrongGuessPenalty the first time it is made and nothing afterwards.
func (g *Game) GuessAtom(row, col int) bool {
	c := core.C(row, col)

	if g.IsAtom(c) {
		g.atomsRemaining--
		g.guesses = append(g.guesses, c)
		return true
	}

	if slices.Contains(g.guesses, c) {
		return false
	}

	g.guesses = append(g.guesses, c)
	g.score -= WrongGuessPenalty
	return false
}

// used reports whether c has already been an entry or an exit.
func (g *Game) used(c core.Coord) bool {
	return slices.Contains(g.entries, c) || slices.Contains(g.exits, c)
}
