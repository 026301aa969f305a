package blackbox

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/registry"
)

// DefaultRandomAtoms is the atom count of the random layout unless overridden.
const DefaultRandomAtoms = 4

// Package-level settings for the random layout
var (
	randomAtoms = DefaultRandomAtoms
)

// SetRandomAtoms sets how many atoms the random layout places.
// The value is clamped to the number of interior cells.
func SetRandomAtoms(n int) {
	randomAtoms = core.Clamp(n, 1, (Size-2)*(Size-2))
}

// RandomAtoms returns the current atom count of the random layout.
func RandomAtoms() int {
	return randomAtoms
}

// FixedLayout is a layout with a predetermined atom placement.
type FixedLayout struct {
	LayoutID    string
	LayoutTitle string
	Placement   []core.Coord
}

// ID returns the layout identifier.
func (l FixedLayout) ID() string { return l.LayoutID }

// Title returns the display name.
func (l FixedLayout) Title() string { return l.LayoutTitle }

// Atoms returns a copy of the placement. The seed is ignored.
func (l FixedLayout) Atoms(int64) []core.Coord {
	out := make([]core.Coord, len(l.Placement))
	copy(out, l.Placement)
	return out
}

// RandomLayout places a fixed number of atoms on distinct interior cells.
type RandomLayout struct {
	Count int
}

// ID returns the layout identifier.
func (l RandomLayout) ID() string { return "random" }

// Title returns the display name.
func (l RandomLayout) Title() string {
	return fmt.Sprintf("Random (%d atoms)", l.Count)
}

// Atoms picks Count distinct interior cells using the seed.
func (l RandomLayout) Atoms(seed int64) []core.Coord {
	rng := rand.New(rand.NewSource(seed))
	inner := Size - 2
	n := core.Clamp(l.Count, 1, inner*inner)

	atoms := make([]core.Coord, 0, n)
	for _, idx := range rng.Perm(inner * inner)[:n] {
		atoms = append(atoms, core.C(1+idx/inner, 1+idx%inner))
	}
	return atoms
}

func init() {
	registry.Register("classic", func() registry.Layout {
		return FixedLayout{
			LayoutID:    "classic",
			LayoutTitle: "Classic",
			Placement:   []core.Coord{core.C(3, 2), core.C(1, 7), core.C(4, 6), core.C(8, 8)},
		}
	})
	registry.Register("corners", func() registry.Layout {
		return FixedLayout{
			LayoutID:    "corners",
			LayoutTitle: "Four Corners",
			Placement:   []core.Coord{core.C(1, 1), core.C(1, 8), core.C(8, 1), core.C(8, 8)},
		}
	})
	registry.Register("cluster", func() registry.Layout {
		return FixedLayout{
			LayoutID:    "cluster",
			LayoutTitle: "Cluster",
			Placement:   []core.Coord{core.C(4, 4), core.C(4, 6), core.C(6, 5), core.C(2, 7), core.C(7, 2)},
		}
	})
	registry.Register("random", func() registry.Layout {
		return RandomLayout{Count: randomAtoms}
	})
}
