package core

import "fmt"

// Direction is the heading of the snake
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	dirCount
)

var directionNames = [dirCount]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d < dirCount
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	panic(invalidDirection(d))
}

// Delta returns the row and column offset of one step in direction d
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	panic(invalidDirection(d))
}

// IsOpposite reports whether other is the exact reverse of d
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && other.Valid() && d.Opposite() == other
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

func invalidDirection(d Direction) string {
	return fmt.Sprintf("core: undefined direction %d", uint8(d))
}
