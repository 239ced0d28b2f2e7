package core

import "testing"

func TestPositionStep(t *testing.T) {
	p := Position{Row: 5, Col: 5}

	if got := p.Step(DirRight); got != (Position{Row: 5, Col: 6}) {
		t.Errorf("Expected (5,6), got %+v", got)
	}
	if got := p.Step(DirUp); got != (Position{Row: 4, Col: 5}) {
		t.Errorf("Expected (4,5), got %+v", got)
	}
	if p != (Position{Row: 5, Col: 5}) {
		t.Error("Step must not mutate the receiver")
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Rows: 10, Cols: 20}

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"origin", Position{0, 0}, true},
		{"last cell", Position{9, 19}, true},
		{"row edge", Position{10, 0}, false},
		{"col edge", Position{0, 20}, false},
		{"negative row", Position{-1, 3}, false},
		{"negative col", Position{3, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.pos); got != tt.want {
				t.Errorf("Contains(%+v) = %v, expected %v", tt.pos, got, tt.want)
			}
		})
	}

	if b.Cells() != 200 {
		t.Errorf("Expected 200 cells, got %d", b.Cells())
	}
	if (Bounds{Rows: -1, Cols: 5}).Cells() != 0 {
		t.Error("Expected 0 cells for degenerate bounds")
	}
}
