package blackbox

import (
	"fmt"

	"github.com/vovakirdan/tui-blackbox/internal/core"
)

const (
	cellWidth  = 3 // Width of each cell, cursor brackets included
	boardW     = Size*cellWidth + 2
	boardH     = Size + 2
	hudHeight  = 3
	minScreenW = boardW + 4
	minScreenH = hudHeight + boardH + 3
)

// Render draws the session to the screen.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if s.game == nil {
		return
	}
	if s.tooSmall {
		s.renderTooSmall(dst)
		return
	}

	boardX := (s.screenW - boardW) / 2
	boardY := hudHeight

	s.renderHUD(dst, boardX)
	s.renderBoard(dst, boardX, boardY)
	s.renderFooter(dst, boardX, boardY+boardH+1)
}

// renderTooSmall shows a "window too small" message.
func (s *Session) renderTooSmall(dst *core.Screen) {
	y := s.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and counters.
func (s *Session) renderHUD(dst *core.Screen, boardX int) {
	dst.DrawTextCentered(0, fmt.Sprintf("BLACK BOX - %s", s.Title()))

	hud := fmt.Sprintf("Score: %d   Atoms left: %d   Rays: %d",
		s.game.Score(), s.game.AtomsRemaining(), len(s.shots))
	dst.DrawText(boardX, 1, hud)
}

// renderBoard draws the framed grid, the last ray's path and the cursor.
func (s *Session) renderBoard(dst *core.Screen, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH), core.ColorGray)

	path := make(map[core.Coord]bool)
	if n := len(s.shots); n > 0 {
		for _, c := range s.shots[n-1].Result.Path {
			path[c] = true
		}
	}

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			cell := core.C(r, c)
			x := x0 + 1 + c*cellWidth + 1
			y := y0 + 1 + r
			glyph, color := s.glyph(cell, path[cell])
			dst.SetColored(x, y, glyph, color)

			if cell == s.cursor && !s.over() {
				dst.SetColored(x-1, y, '[', core.ColorBrightYellow)
				dst.SetColored(x+1, y, ']', core.ColorBrightYellow)
			}
		}
	}
}

// glyph picks the symbol and color of one cell.
func (s *Session) glyph(c core.Coord, onPath bool) (rune, core.Color) {
	switch {
	case c.IsCorner():
		return ' ', core.ColorDefault

	case c.IsBorder():
		if l, ok := s.labels[c]; ok {
			switch l {
			case 'H':
				return l, core.ColorRed
			case 'R':
				return l, core.ColorYellow
			default:
				return l, core.ColorMagenta
			}
		}
		return rune(MarkerEntry), core.ColorGray
	}

	atom := s.game.IsAtom(c)
	switch {
	case s.found[c]:
		return '@', core.ColorBrightGreen
	case s.over() && atom:
		return rune(MarkerAtom), core.ColorBrightRed
	case s.wrong[c]:
		return 'x', core.ColorRed
	case onPath:
		return '*', core.ColorCyan
	default:
		return '.', core.ColorGray
	}
}

// renderFooter draws the message line and the end-of-game hint.
func (s *Session) renderFooter(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, s.message)

	switch {
	case s.solved:
		dst.DrawTextColored(x, y+1, "SOLVED - press R for a new game", core.ColorBrightGreen)
	case s.revealed:
		dst.DrawTextColored(x, y+1, "GAME OVER - press R for a new game", core.ColorBrightRed)
	}
}
