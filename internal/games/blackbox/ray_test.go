package blackbox

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-blackbox/internal/core"
)

func TestShootRayInvalidOrigins(t *testing.T) {
	origins := []core.Coord{
		core.C(0, 0), core.C(0, 9), core.C(9, 0), core.C(9, 9), // corners
		core.C(1, 1), core.C(5, 5), core.C(8, 8), // interior
		core.C(10, 5), core.C(-1, 3), // off grid
	}

	for _, o := range origins {
		g := mustNew(t, core.C(4, 4))
		res := g.ShootRay(o.Row, o.Col)

		if res.Kind != RayInvalid {
			t.Errorf("ShootRay%v kind = %v, want invalid", o, res.Kind)
		}
		if !errors.Is(res.Err(), ErrInvalidOrigin) {
			t.Errorf("ShootRay%v Err() = %v, want ErrInvalidOrigin", o, res.Err())
		}
		if g.Score() != StartingScore {
			t.Errorf("ShootRay%v changed score to %d", o, g.Score())
		}
		if len(g.Entries()) != 0 || len(g.Exits()) != 0 {
			t.Errorf("ShootRay%v changed history", o)
		}
	}
}

func TestShootRayStraightThrough(t *testing.T) {
	g := mustNew(t)

	res := g.ShootRay(0, 5)
	if res.Kind != RayExit || res.Exit != core.C(9, 5) {
		t.Fatalf("ShootRay(0, 5) = %v, want exit (9,5)", res)
	}
	if res.Err() != nil {
		t.Errorf("Err() = %v for a valid shot", res.Err())
	}
	if g.Score() != StartingScore-2 {
		t.Errorf("Score() = %d, want %d", g.Score(), StartingScore-2)
	}
	if res.Cost != 2 {
		t.Errorf("Cost = %d, want 2", res.Cost)
	}
	if len(res.Path) != Size {
		t.Errorf("Path has %d cells, want %d", len(res.Path), Size)
	}
	if res.Deflections != 0 {
		t.Errorf("Deflections = %d, want 0", res.Deflections)
	}
}

func TestShootRaySameEntryTwice(t *testing.T) {
	g := mustNew(t)

	g.ShootRay(0, 5)
	after := g.Score()

	res := g.ShootRay(0, 5)
	if res.Exit != core.C(9, 5) {
		t.Fatalf("second shot exit = %v, want (9,5)", res.Exit)
	}
	if g.Score() != after {
		t.Errorf("repeated shot changed score from %d to %d", after, g.Score())
	}
	if res.Cost != 0 {
		t.Errorf("Cost = %d for a repeated shot, want 0", res.Cost)
	}
	if len(g.Entries()) != 1 {
		t.Errorf("Entries() = %v, want a single entry", g.Entries())
	}
	if len(g.Exits()) != 2 {
		t.Errorf("Exits() = %v, want every exit recorded", g.Exits())
	}
}

func TestShootRayPreviousExitIsFreeEntry(t *testing.T) {
	g := mustNew(t)

	g.ShootRay(9, 5) // exits at (0,5)
	if g.Score() != StartingScore-2 {
		t.Fatalf("Score() = %d, want %d", g.Score(), StartingScore-2)
	}

	res := g.ShootRay(0, 5)
	if res.Exit != core.C(9, 5) {
		t.Fatalf("exit = %v, want (9,5)", res.Exit)
	}
	if g.Score() != StartingScore-2 {
		t.Errorf("Score() = %d, firing from a known exit into a known entry should be free", g.Score())
	}
	if len(g.Entries()) != 1 {
		t.Errorf("Entries() = %v, a previous exit must not be re-recorded as entry", g.Entries())
	}
}

func TestShootRayDirectHit(t *testing.T) {
	g := mustNew(t, core.C(3, 5))

	res := g.ShootRay(0, 5)
	if res.Kind != RayHit {
		t.Fatalf("ShootRay(0, 5) = %v, want hit", res)
	}
	if len(g.Exits()) != 0 {
		t.Errorf("Exits() = %v, a hit must not record an exit", g.Exits())
	}
	if g.AtomsRemaining() != 1 {
		t.Errorf("AtomsRemaining() = %d, a hit must not remove the atom", g.AtomsRemaining())
	}
	if g.Score() != StartingScore-1 {
		t.Errorf("Score() = %d, want %d", g.Score(), StartingScore-1)
	}
	if last := res.Path[len(res.Path)-1]; last != core.C(3, 5) {
		t.Errorf("path ends at %v, want the atom (3,5)", last)
	}
}

func TestShootRayDeflectionTable(t *testing.T) {
	tests := []struct {
		name   string
		atom   core.Coord
		origin core.Coord
		exit   core.Coord
	}{
		{"south, atom down-right turns west", core.C(2, 6), core.C(0, 5), core.C(1, 0)},
		{"south, farther atom down-right turns west", core.C(3, 6), core.C(0, 5), core.C(2, 0)},
		{"south, atom down-left turns east", core.C(3, 4), core.C(0, 5), core.C(2, 9)},
		{"north, atom up-right turns west", core.C(6, 6), core.C(9, 5), core.C(7, 0)},
		{"north, atom up-left turns east", core.C(6, 4), core.C(9, 5), core.C(7, 9)},
		{"east, atom up-ahead turns south", core.C(3, 4), core.C(4, 0), core.C(9, 3)},
		{"east, atom down-ahead turns north", core.C(5, 4), core.C(4, 0), core.C(0, 3)},
		{"west, atom up-ahead turns south", core.C(3, 5), core.C(4, 9), core.C(9, 6)},
		{"west, atom down-ahead turns north", core.C(5, 5), core.C(4, 9), core.C(0, 6)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustNew(t, tc.atom)
			res := g.ShootRay(tc.origin.Row, tc.origin.Col)

			if res.Kind != RayExit {
				t.Fatalf("ShootRay%v = %v, want an exit", tc.origin, res)
			}
			if res.Exit != tc.exit {
				t.Errorf("ShootRay%v exit = %v, want %v", tc.origin, res.Exit, tc.exit)
			}
			if res.Deflections != 1 {
				t.Errorf("Deflections = %d, want 1", res.Deflections)
			}
		})
	}
}

func TestShootRayDeflectsAtTurnCell(t *testing.T) {
	// The ray turns at (1,5) without advancing, then runs west along row 1.
	g := mustNew(t, core.C(2, 6))
	res := g.ShootRay(0, 5)

	want := []core.Coord{
		core.C(0, 5), core.C(1, 5), core.C(1, 4), core.C(1, 3),
		core.C(1, 2), core.C(1, 1), core.C(1, 0),
	}
	if len(res.Path) != len(want) {
		t.Fatalf("Path = %v, want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Errorf("Path[%d] = %v, want %v", i, res.Path[i], want[i])
		}
	}
	if g.Score() != StartingScore-2 {
		t.Errorf("Score() = %d, want %d", g.Score(), StartingScore-2)
	}
}

func TestShootRayDeflectionAtOrigin(t *testing.T) {
	// An atom diagonal to the origin turns the ray on the border itself.
	g := mustNew(t, core.C(1, 6))
	res := g.ShootRay(0, 5)

	if res.Kind != RayExit || res.Exit != core.C(0, 0) {
		t.Errorf("ShootRay(0, 5) = %v, want exit (0,0)", res)
	}
}

func TestShootRayChainedDeflections(t *testing.T) {
	// South from (0,3): (4,4) turns it west at (3,3), then (2,1) turns it
	// south at (3,2), and it runs down column 2.
	g := mustNew(t, core.C(4, 4), core.C(2, 1))
	res := g.ShootRay(0, 3)

	if res.Kind != RayExit || res.Exit != core.C(9, 2) {
		t.Fatalf("ShootRay(0, 3) = %v, want exit (9,2)", res)
	}
	if res.Deflections != 2 {
		t.Errorf("Deflections = %d, want 2", res.Deflections)
	}
}

func TestShootRayHitAfterDeflection(t *testing.T) {
	// Turned east at (2,5) by (3,4), the ray runs into (2,8).
	g := mustNew(t, core.C(3, 4), core.C(2, 8))
	res := g.ShootRay(0, 5)

	if res.Kind != RayHit {
		t.Errorf("ShootRay(0, 5) = %v, want hit", res)
	}
	if len(g.Exits()) != 0 {
		t.Errorf("Exits() = %v, want none", g.Exits())
	}
}

func TestShootRayTrappedRayReflects(t *testing.T) {
	// (2,6) turns the ray west at (1,5); (0,4) would turn it back south.
	// Only reachable with a border atom, so build the game unvalidated.
	g := newGame([]core.Coord{core.C(2, 6), core.C(0, 4)})
	res := g.ShootRay(0, 5)

	if !res.Reflected() {
		t.Fatalf("ShootRay(0, 5) = %v, want reflection to (0,5)", res)
	}
	if g.Score() != StartingScore-1 {
		t.Errorf("Score() = %d, a reflection should only cost the entry", g.Score())
	}
	if exits := g.Exits(); len(exits) != 1 || exits[0] != core.C(0, 5) {
		t.Errorf("Exits() = %v, want [(0,5)]", exits)
	}
}

// borderCells returns every valid ray origin.
func borderCells() []core.Coord {
	var cells []core.Coord
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if core.C(r, c).IsBorder() {
				cells = append(cells, core.C(r, c))
			}
		}
	}
	return cells
}

func TestShootRaySingleAtomPathsAreShort(t *testing.T) {
	origins := borderCells()

	for r := 1; r < Size-1; r++ {
		for c := 1; c < Size-1; c++ {
			g := mustNew(t, core.C(r, c))
			for _, o := range origins {
				res := g.ShootRay(o.Row, o.Col)
				if res.Kind == RayInvalid {
					t.Fatalf("ShootRay%v invalid for a border origin", o)
				}
				if len(res.Path) > 2*Size {
					t.Errorf("atom (%d,%d) origin %v: path of %d cells", r, c, o, len(res.Path))
				}
				if res.Deflections > 1 {
					t.Errorf("atom (%d,%d) origin %v: %d deflections from one atom", r, c, o, res.Deflections)
				}
			}
		}
	}
}

func TestShootRayAlwaysTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	origins := borderCells()
	maxPath := Size * Size * 4

	for i := 0; i < 200; i++ {
		var atoms []core.Coord
		n := 1 + rng.Intn(12)
		for j := 0; j < n; j++ {
			atoms = append(atoms, core.C(1+rng.Intn(Size-2), 1+rng.Intn(Size-2)))
		}

		g := mustNew(t, atoms...)
		for _, o := range origins {
			res := g.ShootRay(o.Row, o.Col)
			if len(res.Path) > maxPath {
				t.Fatalf("atoms %v origin %v: path of %d cells", atoms, o, len(res.Path))
			}
			if res.Kind == RayExit && !res.Exit.IsBorder() && !res.Exit.IsCorner() {
				t.Fatalf("atoms %v origin %v: exit %v is not on the edge", atoms, o, res.Exit)
			}
		}
	}
}

func TestRayResultString(t *testing.T) {
	tests := []struct {
		res  RayResult
		want string
	}{
		{RayResult{Kind: RayHit}, "hit"},
		{RayResult{Kind: RayExit, Exit: core.C(9, 5)}, "exit (9,5)"},
		{RayResult{Kind: RayInvalid}, "invalid"},
	}

	for _, tc := range tests {
		if got := tc.res.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
