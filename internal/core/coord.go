package core

import "fmt"

// GridSize is the side length of the Black Box grid, border ring included.
const GridSize = 10

// Coord addresses a grid cell by row and column.
// Row increases downward, column increases to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns a new Coord one cell in the given direction.
func (c Coord) Step(d Dir) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

// InBounds reports whether the coordinate lies on the grid.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

func onEdge(v int) bool {
	return v == 0 || v == GridSize-1
}

// IsCorner reports whether the coordinate is one of the four corner cells.
func (c Coord) IsCorner() bool {
	return onEdge(c.Row) && onEdge(c.Col)
}

// IsBorder reports whether the coordinate is a non-corner cell of the
// outer ring. Only border cells can be used as ray origins.
func (c Coord) IsBorder() bool {
	if !c.InBounds() || c.IsCorner() {
		return false
	}
	return onEdge(c.Row) || onEdge(c.Col)
}

// IsInterior reports whether the coordinate lies inside the border ring.
func (c Coord) IsInterior() bool {
	return c.Row >= 1 && c.Row <= GridSize-2 && c.Col >= 1 && c.Col <= GridSize-2
}

// Dir is a compass direction of travel on the grid.
type Dir uint8

const (
	DirNorth Dir = iota
	DirEast
	DirSouth
	DirWest
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirEast:
		return "East"
	case DirSouth:
		return "South"
	case DirWest:
		return "West"
	default:
		return "Unknown"
	}
}

// Delta returns the (dr, dc) offset for moving one step in this direction.
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirNorth:
		return -1, 0
	case DirEast:
		return 0, 1
	case DirSouth:
		return 1, 0
	case DirWest:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return d
	}
}
