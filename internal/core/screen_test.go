package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if c := s.GetCell(5, 5).Color; c != ColorRed {
		t.Errorf("GetCell(5, 5).Color = %d, expected %d", c, ColorRed)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "XXXXXXXXXX", ColorGreen)

	s.Clear()

	for x := 0; x < 10; x++ {
		cell := s.GetCell(x, 0)
		if cell.Rune != ' ' || cell.Color != ColorDefault {
			t.Errorf("After Clear, expected blank cell at (%d, 0), got %+v", x, cell)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 0, "score")

	if got := s.Row(0); got != "  score   " {
		t.Errorf("Row(0) = %q, expected %q", got, "  score   ")
	}

	// Clipped at right edge
	s.DrawText(8, 1, "abcdef")
	if got := s.Row(1); got != "        ab" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "·o·")

	if s.Get(1, 0) != 'o' {
		t.Errorf("Get(1, 0) = %q, expected 'o' (runes must be placed per cell)", s.Get(1, 0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)

	expected := []string{
		"┌──┐",
		"│  │",
		"└──┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d, expected 2x3", s.Width(), s.Height())
	}
	if got := s.Row(0); got != "ab" {
		t.Errorf("Row(0) after resize = %q, expected %q", got, "ab")
	}
	if got := s.Row(2); got != "  " {
		t.Errorf("Row(2) after resize = %q, expected blank", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 || lines[0] != "abc" || lines[1] != "def" {
		t.Errorf("String() = %q", s.String())
	}
}
