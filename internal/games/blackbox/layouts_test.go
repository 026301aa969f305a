package blackbox

import (
	"testing"

	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/registry"
)

func TestBuiltinLayoutsAreRegistered(t *testing.T) {
	for _, id := range []string{"classic", "corners", "cluster", "random"} {
		layout, err := registry.Create(id)
		if err != nil {
			t.Errorf("registry.Create(%q) failed: %v", id, err)
			continue
		}
		if layout.ID() != id {
			t.Errorf("layout ID = %q, want %q", layout.ID(), id)
		}
		if _, err := New(layout.Atoms(1)); err != nil {
			t.Errorf("layout %q is not playable: %v", id, err)
		}
	}
}

func TestRandomLayout(t *testing.T) {
	l := RandomLayout{Count: 6}

	atoms := l.Atoms(99)
	if len(atoms) != 6 {
		t.Fatalf("Atoms() returned %d atoms, want 6", len(atoms))
	}

	seen := make(map[core.Coord]bool)
	for _, a := range atoms {
		if !a.IsInterior() {
			t.Errorf("atom %v is not interior", a)
		}
		if seen[a] {
			t.Errorf("duplicate atom %v", a)
		}
		seen[a] = true
	}

	// Same seed, same placement
	again := l.Atoms(99)
	for i := range atoms {
		if atoms[i] != again[i] {
			t.Fatalf("Atoms(99) not deterministic: %v vs %v", atoms, again)
		}
	}
}

func TestSetRandomAtoms(t *testing.T) {
	defer SetRandomAtoms(DefaultRandomAtoms)

	SetRandomAtoms(0)
	if RandomAtoms() != 1 {
		t.Errorf("RandomAtoms() = %d, want clamp to 1", RandomAtoms())
	}

	SetRandomAtoms(500)
	if RandomAtoms() != 64 {
		t.Errorf("RandomAtoms() = %d, want clamp to 64", RandomAtoms())
	}

	SetRandomAtoms(5)
	layout, err := registry.Create("random")
	if err != nil {
		t.Fatalf("registry.Create(random) failed: %v", err)
	}
	if n := len(layout.Atoms(3)); n != 5 {
		t.Errorf("random layout placed %d atoms, want 5", n)
	}
}

func TestFixedLayoutReturnsCopy(t *testing.T) {
	l := FixedLayout{LayoutID: "x", Placement: []core.Coord{core.C(2, 2)}}

	atoms := l.Atoms(0)
	atoms[0] = core.C(5, 5)

	if l.Placement[0] != core.C(2, 2) {
		t.Error("Atoms() exposed the placement slice")
	}
}
