package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/vi-snake/core"
)

// Segment is one cell-sized unit of the snake body
type Segment struct {
	Pos   core.Position
	Glyph rune
}

// Snake is an ordered chain of segments, head at index 0, plus its heading
// Length is always at least 1 and never decreases
type Snake struct {
	segments []Segment
	heading  core.Direction
	glyph    rune
}

// NewSnake creates a single-segment snake at start moving in heading
func NewSnake(start core.Position, heading core.Direction, glyph rune) *Snake {
	if !heading.Valid() {
		panic(fmt.Sprintf("engine: snake created with undefined direction %d", uint8(heading)))
	}
	return &Snake{
		segments: []Segment{{Pos: start, Glyph: glyph}},
		heading:  heading,
		glyph:    glyph,
	}
}

// Direction returns the current heading
func (s *Snake) Direction() core.Direction {
	return s.heading
}

// Advance moves the snake one cell
// A request opposite to the heading reverses the chain first so the former tail leads
// Every trailing segment takes its predecessor's previous position
func (s *Snake) Advance(requested core.Direction) {
	if !requested.Valid() {
		panic(fmt.Sprintf("engine: advance with undefined direction %d", uint8(requested)))
	}

	if s.heading.IsOpposite(requested) {
		slices.Reverse(s.segments)
	}
	s.heading = requested

	next := s.segments[0].Pos.Step(s.heading)
	for i := range s.segments {
		next, s.segments[i].Pos = s.segments[i].Pos, next
	}
}

// Grow appends one segment on the current tail cell
// The next Advance leaves it on the tail's pre-advance position
func (s *Snake) Grow() {
	tail := s.segments[len(s.segments)-1].Pos
	s.segments = append(s.segments, Segment{Pos: tail, Glyph: s.glyph})
}

// SelfCollision reports whether the head shares a cell with any other segment
func (s *Snake) SelfCollision() bool {
	head := s.segments[0].Pos
	for _, seg := range s.segments[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}

// Head returns the head position
func (s *Snake) Head() core.Position {
	return s.segments[0].Pos
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the chain, head first
func (s *Snake) Segments() []Segment {
	return slices.Clone(s.segments)
}

// Occupied returns the positions of all segments, head first
func (s *Snake) Occupied() []core.Position {
	out := make([]core.Position, len(s.segments))
	for i, seg := range s.segments {
		out[i] = seg.Pos
	}
	return out
}
