package core

// Position is a cell on the playfield, row-major
type Position struct {
	Row, Col int
}

// Add returns p moved by the given row and column delta
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns p moved one cell in direction d
// Panics on a direction outside the enumeration
func (p Position) Step(d Direction) Position {
	dRow, dCol := d.Delta()
	return p.Add(dRow, dCol)
}

// Bounds is the playfield size in cells
type Bounds struct {
	Rows, Cols int
}

// Contains reports whether p lies inside [0,Rows) x [0,Cols)
func (b Bounds) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// Cells returns the total cell count
func (b Bounds) Cells() int {
	if b.Rows <= 0 || b.Cols <= 0 {
		return 0
	}
	return b.Rows * b.Cols
}
