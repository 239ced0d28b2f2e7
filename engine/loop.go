package engine

import (
	"runtime"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/input"
)

// IntentSource samples at most one input intent without blocking
type IntentSource interface {
	Poll() input.Intent
}

// FrameRenderer draws the current session state
type FrameRenderer interface {
	RenderFrame(g *Game)
}

// Loop drives a Game at a fixed timestep
// Pacing is a busy-wait poll, the loop never sleeps
type Loop struct {
	game     *Game
	input    IntentSource
	renderer FrameRenderer
	clock    TimeProvider
	interval time.Duration

	frames uint64
}

// NewLoop creates a loop ticking at frameRate Hz, frameRate <= 0 selects the default
func NewLoop(game *Game, src IntentSource, renderer FrameRenderer, clock TimeProvider, frameRate int) *Loop {
	interval := constants.FrameUpdateInterval
	if frameRate > 0 {
		interval = time.Second / time.Duration(frameRate)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Loop{
		game:     game,
		input:    src,
		renderer: renderer,
		clock:    clock,
		interval: interval,
	}
}

// Interval returns the per-frame budget
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Frames returns the number of processed frames
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run processes frames until the game terminates
// The final frame is rendered before returning so the collision is visible
func (l *Loop) Run() {
	l.renderer.RenderFrame(l.game)

	prev := l.clock.Now()
	for l.game.Running() {
		now := l.clock.Now()
		if now.Sub(prev) < l.interval {
			// Spin without advancing, let the input poller run
			runtime.Gosched()
			continue
		}
		prev = now

		l.frames++
		l.game.Tick(l.input.Poll())
		l.renderer.RenderFrame(l.game)
	}
}
