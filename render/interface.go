package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Surface is the character-cell display a frame is drawn on
// tcell.Screen satisfies it
type Surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// SystemRenderer draws one aspect of the game state
type SystemRenderer interface {
	Render(g *engine.Game, s Surface)
}
