package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// arrowKeys maps terminal arrow keys to headings
var arrowKeys = map[tcell.Key]core.Direction{
	tcell.KeyUp:    core.DirUp,
	tcell.KeyDown:  core.DirDown,
	tcell.KeyLeft:  core.DirLeft,
	tcell.KeyRight: core.DirRight,
}

// Machine parses terminal events into Intents
// Stateless apart from the configured quit rune
type Machine struct {
	quitKey rune
}

// NewMachine creates a parser quitting on quitKey, 0 selects the default
func NewMachine(quitKey rune) *Machine {
	if quitKey == 0 {
		quitKey = constants.QuitKey
	}
	return &Machine{quitKey: quitKey}
}

// QuitKey returns the rune that ends the session
func (m *Machine) QuitKey() rune {
	return m.quitKey
}

// Process parses a terminal event, unmapped events yield None
func (m *Machine) Process(ev tcell.Event) Intent {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return None
	}

	if d, ok := arrowKeys[key.Key()]; ok {
		return Turn(d)
	}

	switch key.Key() {
	case tcell.KeyCtrlC:
		// Raw mode swallows SIGINT
		return Quit()
	case tcell.KeyRune:
		mods := key.Modifiers()
		if mods&tcell.ModCtrl != 0 && (key.Rune() == 'c' || key.Rune() == 'C') {
			return Quit()
		}
		if key.Rune() == m.quitKey && mods&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			return Quit()
		}
	}
	return None
}

// EventPoller yields at most one pending terminal event without blocking
type EventPoller interface {
	PollEvent() (tcell.Event, bool)
}

// Source samples the terminal once per call and translates the event
type Source struct {
	poller  EventPoller
	machine *Machine
}

// NewSource binds a poller to a parser
func NewSource(poller EventPoller, machine *Machine) *Source {
	return &Source{poller: poller, machine: machine}
}

// Poll returns the intent of the next pending event, None when nothing is queued
func (s *Source) Poll() Intent {
	ev, ok := s.poller.PollEvent()
	if !ok {
		return None
	}
	return s.machine.Process(ev)
}
