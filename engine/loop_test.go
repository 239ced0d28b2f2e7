package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
)

// scriptedInput replays intents one per poll, then reports none
type scriptedInput struct {
	intents []input.Intent
	polls   int
}

func (s *scriptedInput) Poll() input.Intent {
	s.polls++
	if len(s.intents) == 0 {
		return input.None
	}
	in := s.intents[0]
	s.intents = s.intents[1:]
	return in
}

type countingRenderer struct {
	frames int
	heads  []core.Position
}

func (r *countingRenderer) RenderFrame(g *Game) {
	r.frames++
	r.heads = append(r.heads, g.Snake().Head())
}

func TestLoopRunsUntilQuit(t *testing.T) {
	g := newTestGame(10, 10, pos(5, 0), 2)
	src := &scriptedInput{intents: []input.Intent{input.None, input.None, input.None, input.Quit()}}
	rend := &countingRenderer{}
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	loop := NewLoop(g, src, rend, clock, 60)
	clock.SetAutoStep(loop.Interval())
	loop.Run()

	if g.Cause() != CauseQuit {
		t.Fatalf("Expected quit, got %v", g.Cause())
	}
	if loop.Frames() != 4 {
		t.Errorf("Expected 4 frames, got %d", loop.Frames())
	}
	if src.polls != 4 {
		t.Errorf("Expected one poll per frame (4), got %d", src.polls)
	}
	// Initial frame plus one per processed frame
	if rend.frames != 5 {
		t.Errorf("Expected 5 renders, got %d", rend.frames)
	}
	if g.Stats().Steps != 1 {
		t.Errorf("Expected 1 step before quit, got %d", g.Stats().Steps)
	}
}

// TestLoopBusyWaitsBetweenFrames verifies no frame is processed before the budget elapses
func TestLoopBusyWaitsBetweenFrames(t *testing.T) {
	g := newTestGame(10, 10, pos(5, 0), 2)
	src := &scriptedInput{intents: []input.Intent{input.Quit()}}
	rend := &countingRenderer{}
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	loop := NewLoop(g, src, rend, clock, 50)
	if loop.Interval() != 20*time.Millisecond {
		t.Fatalf("Expected 20ms interval at 50 Hz, got %v", loop.Interval())
	}
	clock.SetAutoStep(5 * time.Millisecond)
	loop.Run()

	if loop.Frames() != 1 {
		t.Errorf("Expected 1 frame, got %d", loop.Frames())
	}
	// One read for the start mark, then reads at +5, +10, +15 spin and +20 fires
	if clock.Calls() != 5 {
		t.Errorf("Expected 5 clock reads, got %d", clock.Calls())
	}
	if src.polls != 1 {
		t.Errorf("Input must only be sampled on a processed frame, got %d polls", src.polls)
	}
}

func TestLoopStopsOnBoundary(t *testing.T) {
	g := newTestGame(10, 10, pos(5, 0), 0)
	src := &scriptedInput{}
	rend := &countingRenderer{}
	clock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	loop := NewLoop(g, src, rend, clock, 0)
	clock.SetAutoStep(loop.Interval())
	loop.Run()

	if g.Cause() != CauseBoundary {
		t.Fatalf("Expected boundary termination, got %v", g.Cause())
	}
	// Cols 1..10 survive under the lenient rule, col 11 terminates
	if loop.Frames() != 11 {
		t.Errorf("Expected 11 frames, got %d", loop.Frames())
	}
	if last := rend.heads[len(rend.heads)-1]; last != pos(5, 11) {
		t.Errorf("Expected final rendered head (5,11), got %+v", last)
	}
}
