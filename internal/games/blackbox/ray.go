package blackbox

import (
	"fmt"

	"github.com/vovakirdan/tui-blackbox/internal/core"
)

// RayKind is the outcome class of a shot.
type RayKind int

const (
	RayInvalid RayKind = iota // origin is a corner or not on the border
	RayHit                    // the ray ran into an atom
	RayExit                   // the ray left the board
)

// String returns the string representation of a ray kind.
func (k RayKind) String() string {
	switch k {
	case RayInvalid:
		return "invalid"
	case RayHit:
		return "hit"
	case RayExit:
		return "exit"
	default:
		return "unknown"
	}
}

// RayResult is the outcome of ShootRay.
type RayResult struct {
	Kind   RayKind
	Origin core.Coord
	Exit   core.Coord // set when Kind is RayExit

	// Path lists the cells the ray visited, origin first.
	Path        []core.Coord
	Deflections int

	// Cost is the number of points this shot deducted.
	Cost int
}

// Reflected reports whether the ray came back out where it went in.
func (r RayResult) Reflected() bool {
	return r.Kind == RayExit && r.Exit == r.Origin
}

// Err returns ErrInvalidOrigin, wrapped with the origin, for invalid shots
// and nil otherwise.
func (r RayResult) Err() error {
	if r.Kind != RayInvalid {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidOrigin, r.Origin)
}

// String formats the result the way the game reports it to the player.
func (r RayResult) String() string {
	switch r.Kind {
	case RayHit:
		return "hit"
	case RayExit:
		return fmt.Sprintf("exit %v", r.Exit)
	default:
		return "invalid"
	}
}

// deflection is one diagonal check of the traversal: an atom at the offset
// turns the ray to the given direction.
type deflection struct {
	dr, dc int
	turn   core.Dir
}

// deflections lists, per direction of travel, the two diagonal cells that
// deflect the ray, in the order they are checked.
var deflections = [4][2]deflection{
	core.DirSouth: {{dr: 1, dc: 1, turn: core.DirWest}, {dr: 1, dc: -1, turn: core.DirEast}},
	core.DirNorth: {{dr: -1, dc: 1, turn: core.DirWest}, {dr: -1, dc: -1, turn: core.DirEast}},
	core.DirEast:  {{dr: -1, dc: 1, turn: core.DirSouth}, {dr: 1, dc: 1, turn: core.DirNorth}},
	core.DirWest:  {{dr: -1, dc: -1, turn: core.DirSouth}, {dr: 1, dc: -1, turn: core.DirNorth}},
}

// entryDir returns the direction a ray fired from a border cell travels in.
func entryDir(c core.Coord) core.Dir {
	switch {
	case c.Row == 0:
		return core.DirSouth
	case c.Row == Size-1:
		return core.DirNorth
	case c.Col == 0:
		return core.DirEast
	default:
		return core.DirWest
	}
}

// atEdge reports whether a ray at c moving in d is about to leave the board.
func atEdge(c core.Coord, d core.Dir) bool {
	switch d {
	case core.DirSouth:
		return c.Row == Size-1
	case core.DirNorth:
		return c.Row == 0
	case core.DirEast:
		return c.Col == Size-1
	default:
		return c.Col == 0
	}
}

// ShootRay fires a ray from the border cell (row, col).
//
// An origin not seen before as an entry or exit costs NewCellPenalty, as
// does an exit cell not seen before. A hit records no exit and does not
// change the atoms remaining. Corners and non-border cells give RayInvalid
// and leave the game unchanged.
func (g *Game) ShootRay(row, col int) RayResult {
	origin := core.C(row, col)
	if !origin.IsBorder() {
		return RayResult{Kind: RayInvalid, Origin: origin}
	}

	cost := 0
	if !g.used(origin) {
		g.score -= NewCellPenalty
		g.entries = append(g.entries, origin)
		cost += NewCellPenalty
	}

	res := g.trace(origin)
	if res.Kind == RayExit {
		if !g.used(res.Exit) {
			g.score -= NewCellPenalty
			cost += NewCellPenalty
		}
		g.exits = append(g.exits, res.Exit)
	}
	res.Cost = cost

	return res
}

// rayState is a position and heading of a ray in flight.
type rayState struct {
	pos core.Coord
	dir core.Dir
}

// trace walks a ray from origin until it hits an atom or leaves the board.
// It does not touch score or history.
//
// Every step either advances or turns in place. A ray that comes back to a
// (cell, direction) state it already had would loop forever; it is treated
// as reflected and exits at its origin. There are only Size*Size*4 states,
// so the walk always ends.
func (g *Game) trace(origin core.Coord) RayResult {
	res := RayResult{Origin: origin, Path: []core.Coord{origin}}
	st := rayState{pos: origin, dir: entryDir(origin)}
	seen := make(map[rayState]bool)

	for {
		if seen[st] {
			res.Kind = RayExit
			res.Exit = origin
			return res
		}
		seen[st] = true

		if g.IsAtom(st.pos) {
			res.Kind = RayHit
			return res
		}

		if atEdge(st.pos, st.dir) {
			res.Kind = RayExit
			res.Exit = st.pos
			return res
		}

		if turn, ok := g.deflect(st); ok {
			st.dir = turn
			res.Deflections++
			continue
		}

		st.pos = st.pos.Step(st.dir)
		res.Path = append(res.Path, st.pos)
	}
}

// deflect checks the two diagonal cells ahead of the ray.
func (g *Game) deflect(st rayState) (core.Dir, bool) {
	for _, d := range deflections[st.dir] {
		if g.IsAtom(st.pos.Add(d.dr, d.dc)) {
			return d.turn, true
		}
	}
	return st.dir, false
}
