package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// FruitRenderer draws the active fruit, if any
type FruitRenderer struct {
	style tcell.Style
}

// NewFruitRenderer creates a fruit renderer with the given style
func NewFruitRenderer(style tcell.Style) *FruitRenderer {
	return &FruitRenderer{style: style}
}

// Render implements render.SystemRenderer
func (r *FruitRenderer) Render(g *engine.Game, s render.Surface) {
	f, ok := g.Fruit()
	if !ok {
		return
	}
	s.SetContent(f.Pos.Col, f.Pos.Row, f.Glyph, nil, r.style)
}
