package blackbox

import (
	"fmt"

	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/registry"
)

// pairLabels label exit pairs on the border, like the numbered markers of
// the physical game.
const pairLabels = "123456789abcdefghijklmnopqrstuvwxyz"

// Shot is one fired ray as recorded by a session.
type Shot struct {
	Origin core.Coord
	Result RayResult
}

// Session runs one interactive game on a layout: a cursor over the grid,
// fire/guess/reveal actions, and the markings a player would put on a
// paper board.
type Session struct {
	layout registry.Layout
	game   *Game
	seed   int64

	cursor  core.Coord
	shots   []Shot
	labels  map[core.Coord]rune // border cell -> exit pair label or 'H'/'R'
	pairs   int
	found   map[core.Coord]bool
	wrong   map[core.Coord]bool
	message string

	solved   bool
	revealed bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// NewSession creates a session for the given layout. Call Reset before use.
func NewSession(layout registry.Layout) *Session {
	return &Session{layout: layout}
}

// ID returns the layout identifier, used as the score key.
func (s *Session) ID() string {
	return s.layout.ID()
}

// Title returns the display name.
func (s *Session) Title() string {
	return s.layout.Title()
}

// Game returns the underlying game.
func (s *Session) Game() *Game {
	return s.game
}

// Shots returns the rays fired so far, oldest first.
func (s *Session) Shots() []Shot {
	out := make([]Shot, len(s.shots))
	copy(out, s.shots)
	return out
}

// Reset starts a new game on the layout.
// It fails when the layout yields atoms outside the interior.
func (s *Session) Reset(cfg core.RuntimeConfig) error {
	g, err := New(s.layout.Atoms(cfg.Seed))
	if err != nil {
		return fmt.Errorf("layout %s: %w", s.layout.ID(), err)
	}

	s.game = g
	s.seed = cfg.Seed
	s.cursor = core.C(0, 1)
	s.shots = nil
	s.labels = make(map[core.Coord]rune)
	s.pairs = 0
	s.found = make(map[core.Coord]bool)
	s.wrong = make(map[core.Coord]bool)
	s.message = "Fire rays from the border, then guess where the atoms are."
	s.solved = false
	s.revealed = false

	s.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize updates the screen dimensions.
func (s *Session) Resize(w, h int) {
	s.screenW = w
	s.screenH = h
	s.tooSmall = w < minScreenW || h < minScreenH
}

// Step applies one frame of input.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.game == nil || s.tooSmall || s.over() {
		return core.StepResult{State: s.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		s.moveCursor(-1, 0)
	case in.Has(core.ActionDown):
		s.moveCursor(1, 0)
	case in.Has(core.ActionLeft):
		s.moveCursor(0, -1)
	case in.Has(core.ActionRight):
		s.moveCursor(0, 1)
	}

	switch {
	case in.Has(core.ActionFire):
		s.fire()
	case in.Has(core.ActionGuess):
		s.guess()
	case in.Has(core.ActionReveal):
		s.revealed = true
		s.message = "Atoms revealed."
	}

	return core.StepResult{State: s.State()}
}

func (s *Session) moveCursor(dr, dc int) {
	next := s.cursor.Add(dr, dc)
	next.Row = core.Clamp(next.Row, 0, Size-1)
	next.Col = core.Clamp(next.Col, 0, Size-1)
	s.cursor = next
}

// fire shoots a ray from the cursor and labels the border cells involved.
func (s *Session) fire() {
	res := s.game.ShootRay(s.cursor.Row, s.cursor.Col)
	if res.Kind == RayInvalid {
		s.message = "Rays can only be fired from border cells, not corners."
		return
	}
	s.shots = append(s.shots, Shot{Origin: s.cursor, Result: res})

	switch {
	case res.Kind == RayHit:
		s.label(res.Origin, 'H')
		s.message = fmt.Sprintf("Ray from %v: hit. %s", res.Origin, costText(res.Cost))
	case res.Reflected():
		s.label(res.Origin, 'R')
		s.message = fmt.Sprintf("Ray from %v: reflected. %s", res.Origin, costText(res.Cost))
	default:
		if _, ok := s.labels[res.Origin]; !ok {
			l := rune(pairLabels[s.pairs%len(pairLabels)])
			s.pairs++
			s.label(res.Origin, l)
			s.label(res.Exit, l)
		}
		s.message = fmt.Sprintf("Ray from %v: exit %v. %s", res.Origin, res.Exit, costText(res.Cost))
	}
}

// label marks a border cell once; the first outcome seen there stays.
func (s *Session) label(c core.Coord, l rune) {
	if _, ok := s.labels[c]; !ok {
		s.labels[c] = l
	}
}

func costText(cost int) string {
	if cost == 0 {
		return "Free."
	}
	return fmt.Sprintf("-%d", cost)
}

// guess guesses an atom at the cursor. Atoms only sit inside the border and
// a found atom is not guessed again.
func (s *Session) guess() {
	c := s.cursor
	if !c.IsInterior() {
		s.message = "Atoms are only inside the border."
		return
	}
	if s.found[c] {
		s.message = fmt.Sprintf("Atom at %v already found.", c)
		return
	}

	if s.game.GuessAtom(c.Row, c.Col) {
		s.found[c] = true
		s.message = fmt.Sprintf("Atom found at %v!", c)
		if s.game.AtomsRemaining() <= 0 {
			s.solved = true
			s.message = fmt.Sprintf("All atoms found! Final score %d.", s.game.Score())
		}
		return
	}

	cost := 0
	if !s.wrong[c] {
		cost = WrongGuessPenalty
	}
	s.wrong[c] = true
	s.message = fmt.Sprintf("No atom at %v. %s", c, costText(cost))
}

func (s *Session) over() bool {
	return s.solved || s.revealed
}

// State returns the current session state.
func (s *Session) State() core.GameState {
	if s.game == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:          s.game.Score(),
		AtomsRemaining: s.game.AtomsRemaining(),
		GameOver:       s.over(),
		Solved:         s.solved,
	}
}

// Message returns the status line shown under the board.
func (s *Session) Message() string {
	return s.message
}
