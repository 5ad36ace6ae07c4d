package core

import "testing"

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 6)
	s.Set(2, 1, 'A')
	s.Set(9, 5, 'Z')

	s.Resize(20, 12)
	if s.Width() != 20 || s.Height() != 12 {
		t.Fatalf("size after grow = %dx%d, want 20x12", s.Width(), s.Height())
	}
	if got := s.Get(2, 1); got != 'A' {
		t.Errorf("cell (2,1) after grow = %q, want 'A'", got)
	}
	if got := s.Get(9, 5); got != 'Z' {
		t.Errorf("cell (9,5) after grow = %q, want 'Z'", got)
	}
	if got := s.Get(15, 8); got != ' ' {
		t.Errorf("new cell (15,8) = %q, want blank", got)
	}

	s.Resize(5, 3)
	if got := s.Get(2, 1); got != 'A' {
		t.Errorf("cell (2,1) after shrink = %q, want 'A'", got)
	}
	// The old (9,5) cell is gone; reads past bounds are blank.
	if got := s.Get(9, 5); got != ' ' {
		t.Errorf("out-of-bounds read after shrink = %q, want blank", got)
	}
}

func TestScreenResizeSameSizeKeepsCells(t *testing.T) {
	s := NewScreen(8, 4)
	s.SetCell(3, 2, Cell{Rune: '#', Color: ColorCyan})
	s.Resize(8, 4)
	if got := s.GetCell(3, 2); got.Rune != '#' || got.Color != ColorCyan {
		t.Errorf("cell (3,2) = %+v, want '#' in cyan", got)
	}
}
