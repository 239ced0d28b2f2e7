package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Opposite(); got != tt.want {
				t.Errorf("Expected opposite %v, got %v", tt.want, got)
			}
			if !tt.dir.IsOpposite(tt.want) {
				t.Errorf("Expected %v to be opposite of %v", tt.want, tt.dir)
			}
			if tt.dir.IsOpposite(tt.dir) {
				t.Errorf("Direction %v must not be its own opposite", tt.dir)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir        Direction
		dRow, dCol int
	}{
		{DirUp, -1, 0},
		{DirDown, 1, 0},
		{DirLeft, 0, -1},
		{DirRight, 0, 1},
	}

	for _, tt := range tests {
		dRow, dCol := tt.dir.Delta()
		if dRow != tt.dRow || dCol != tt.dCol {
			t.Errorf("%v: expected delta (%d,%d), got (%d,%d)", tt.dir, tt.dRow, tt.dCol, dRow, dCol)
		}
	}
}

// TestDirectionInvalidPanics verifies undefined headings abort instead of being ignored
func TestDirectionInvalidPanics(t *testing.T) {
	bad := Direction(42)
	if bad.Valid() {
		t.Fatal("Expected Direction(42) to be invalid")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on Delta of invalid direction")
		}
	}()
	bad.Delta()
}
