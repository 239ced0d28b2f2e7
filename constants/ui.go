package constants

import "github.com/gdamore/tcell/v2"

// Glyphs
const (
	// SnakeGlyph is drawn for every body segment
	SnakeGlyph = 'o'

	// FruitGlyph is the diamond used for active food
	FruitGlyph = tcell.RuneDiamond
)

// Key Defaults
const (
	// QuitKey ends the session
	QuitKey = 'q'
)

// Styles
var (
	SnakeStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	FruitStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)
