// Package blackbox implements the Black Box deduction game: a 10x10 grid with
// hidden atoms, probed by rays fired from the border.
//
// Game holds the rules and scoring and has no notion of input or display.
// Session adapts a Game to the terminal platform.
package blackbox

import (
	"strings"

	"github.com/vovakirdan/tui-blackbox/internal/core"
)

// Size is the side length of the board, border ring included.
const Size = core.GridSize

// Marker is the display symbol of a board cell.
type Marker rune

const (
	MarkerBlank Marker = ' ' // interior cell with no atom, and corners
	MarkerEntry Marker = 'o' // border cell a ray can be fired from
	MarkerAtom  Marker = 'X'
)

// Board holds the fixed grid geometry and its display markers.
type Board struct {
	cells [Size][Size]Marker
}

// NewBoard builds an empty board: corners blank, border cells marked as
// entry points, interior blank.
func NewBoard() *Board {
	b := &Board{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if core.C(r, c).IsBorder() {
				b.cells[r][c] = MarkerEntry
			} else {
				b.cells[r][c] = MarkerBlank
			}
		}
	}
	return b
}

// PlaceAtom marks an interior cell as holding an atom.
// Coordinates outside the interior are ignored.
func (b *Board) PlaceAtom(c core.Coord) {
	if !c.IsInterior() {
		return
	}
	b.cells[c.Row][c.Col] = MarkerAtom
}

// Marker returns the marker at c, or MarkerBlank off the grid.
func (b *Board) Marker(c core.Coord) Marker {
	if !c.InBounds() {
		return MarkerBlank
	}
	return b.cells[c.Row][c.Col]
}

// Render returns a text snapshot of the markers, one bracketed row per
// line with cells separated by single spaces.
func (b *Board) Render() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		sb.WriteByte('[')
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(rune(b.cells[r][c]))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
