package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// SnakeRenderer draws every segment of the snake
type SnakeRenderer struct {
	style tcell.Style
}

// NewSnakeRenderer creates a snake renderer with the given style
func NewSnakeRenderer(style tcell.Style) *SnakeRenderer {
	return &SnakeRenderer{style: style}
}

// Render implements render.SystemRenderer
func (r *SnakeRenderer) Render(g *engine.Game, s render.Surface) {
	// Cells past the screen edge are dropped by the surface
	for _, seg := range g.Snake().Segments() {
		s.SetContent(seg.Pos.Col, seg.Pos.Row, seg.Glyph, nil, r.style)
	}
}
