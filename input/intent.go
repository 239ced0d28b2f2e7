package input

import "github.com/lixenwraith/vi-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit // q, Ctrl+C
	IntentTurn // arrow keys
)

// Intent is the semantic result of one input event
type Intent struct {
	Type      IntentType
	Direction core.Direction // valid only for IntentTurn
}

// None is the intent of an absent or ignored event
var None = Intent{}

// Quit returns a quit intent
func Quit() Intent {
	return Intent{Type: IntentQuit}
}

// Turn returns a heading change intent
func Turn(d core.Direction) Intent {
	return Intent{Type: IntentTurn, Direction: d}
}
