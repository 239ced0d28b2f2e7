package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// eventQueueSize bounds buffered input between polls
const eventQueueSize = 64

// Terminal wraps a tcell screen with non-blocking event capture
// Drawing methods are only called from the game loop
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event

	initOnce sync.Once
	finiOnce sync.Once
	initErr  error
}

// New creates a terminal on the process tty
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen wraps an existing screen, e.g. tcell.NewSimulationScreen in tests
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventQueueSize),
	}
}

// Init enters raw mode without echo, hides the cursor and starts the event poller
func (t *Terminal) Init() error {
	t.initOnce.Do(func() {
		if err := t.screen.Init(); err != nil {
			t.initErr = fmt.Errorf("init screen: %w", err)
			return
		}
		t.screen.HideCursor()
		t.screen.Clear()

		// Poller exits when Fini makes PollEvent return nil
		core.Go(t.pollLoop)
	})
	return t.initErr
}

func (t *Terminal) pollLoop() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		default:
			// Queue full: drop, the loop samples one event per tick anyway
		}
	}
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		t.screen.Fini()
	})
}

// PollEvent returns the next queued event without blocking
// Resize events resync the screen before being handed out
func (t *Terminal) PollEvent() (tcell.Event, bool) {
	select {
	case ev := <-t.events:
		if _, ok := ev.(*tcell.EventResize); ok {
			t.screen.Sync()
		}
		return ev, true
	default:
		return nil, false
	}
}

// Size returns the playfield dimensions as rows and columns
func (t *Terminal) Size() core.Bounds {
	w, h := t.screen.Size()
	return core.Bounds{Rows: h, Cols: w}
}

// Clear blanks the back buffer
func (t *Terminal) Clear() {
	t.screen.Clear()
}

// SetContent writes one glyph at column x, row y
func (t *Terminal) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	t.screen.SetContent(x, y, primary, combining, style)
}

// Show presents the back buffer
func (t *Terminal) Show() {
	t.screen.Show()
}
