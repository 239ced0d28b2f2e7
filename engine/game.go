package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
)

// Phase is the session state
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseTerminated
)

func (p Phase) String() string {
	if p == PhaseRunning {
		return "running"
	}
	return "terminated"
}

// Cause records why a session terminated
type Cause uint8

const (
	CauseNone Cause = iota
	CauseQuit
	CauseBoundary
	CauseSelfCollision
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseQuit:
		return "quit"
	case CauseBoundary:
		return "boundary"
	case CauseSelfCollision:
		return "self-collision"
	default:
		return fmt.Sprintf("cause(%d)", uint8(c))
	}
}

// GameConfig holds per-session tunables; zero values select the defaults
type GameConfig struct {
	Bounds       core.Bounds
	Start        *core.Position  // nil: (Rows/2, StartCol)
	Heading      *core.Direction // nil: right
	InitialSpeed *int            // nil: constants.InitialSpeed
	StrictBounds bool            // terminate at Rows/Cols instead of one cell past
	SnakeGlyph   rune
	FruitGlyph   rune
	Placer       *FruitPlacer
}

// Stats summarizes a session
type Stats struct {
	Ticks       uint64
	Steps       uint64
	FruitsEaten int
	Length      int
	Speed       int
}

// Game owns the snake and the optional fruit for one session
// Single-threaded: all methods must be called from the loop goroutine
type Game struct {
	bounds       core.Bounds
	strictBounds bool
	fruitGlyph   rune

	snake  *Snake
	fruit  *Fruit
	placer *FruitPlacer

	heading   core.Direction // latest captured input
	tickCount int
	speed     int

	phase Phase
	cause Cause

	totalTicks  uint64
	steps       uint64
	fruitsEaten int
}

// NewGame creates a running session with a single-segment snake
func NewGame(cfg GameConfig) *Game {
	start := core.Position{Row: cfg.Bounds.Rows / 2, Col: constants.StartCol}
	if cfg.Start != nil {
		start = *cfg.Start
	}
	heading := core.DirRight
	if cfg.Heading != nil {
		heading = *cfg.Heading
	}
	speed := constants.InitialSpeed
	if cfg.InitialSpeed != nil {
		speed = max(*cfg.InitialSpeed, constants.MinSpeed)
	}
	snakeGlyph := cfg.SnakeGlyph
	if snakeGlyph == 0 {
		snakeGlyph = constants.SnakeGlyph
	}
	fruitGlyph := cfg.FruitGlyph
	if fruitGlyph == 0 {
		fruitGlyph = constants.FruitGlyph
	}
	placer := cfg.Placer
	if placer == nil {
		placer = NewFruitPlacer(PlacementRowCol, 1)
	}

	return &Game{
		bounds:       cfg.Bounds,
		strictBounds: cfg.StrictBounds,
		fruitGlyph:   fruitGlyph,
		snake:        NewSnake(start, heading, snakeGlyph),
		placer:       placer,
		heading:      heading,
		speed:        speed,
		phase:        PhaseRunning,
	}
}

// Tick runs one frame: count it, apply the sampled intent, step when the speed threshold is reached
// Returns true when a game step ran
func (g *Game) Tick(in input.Intent) bool {
	if g.phase != PhaseRunning {
		return false
	}

	g.totalTicks++
	g.tickCount++

	g.Apply(in)
	if g.phase != PhaseRunning {
		return false
	}

	if g.tickCount < g.speed {
		return false
	}
	g.tickCount = 0
	g.Step()
	return true
}

// Apply records a heading request or terminates on quit; None leaves state unchanged
func (g *Game) Apply(in input.Intent) {
	if g.phase != PhaseRunning {
		return
	}
	switch in.Type {
	case input.IntentTurn:
		g.heading = in.Direction
	case input.IntentQuit:
		g.terminate(CauseQuit)
	}
}

// Step advances the game state by one step
// Order: ensure fruit, eat if the head sits on it, move, then check collisions
func (g *Game) Step() {
	if g.phase != PhaseRunning {
		return
	}
	g.steps++

	if g.fruit == nil {
		g.spawnFruit()
	}

	if g.fruit != nil && g.snake.Head() == g.fruit.Pos {
		g.snake.Grow()
		g.fruit = nil
		g.fruitsEaten++
		if g.speed > constants.MinSpeed {
			g.speed--
		}
	}

	g.snake.Advance(g.heading)

	switch {
	case g.outOfBounds(g.snake.Head()):
		g.terminate(CauseBoundary)
	case g.snake.SelfCollision():
		g.terminate(CauseSelfCollision)
	}
}

func (g *Game) spawnFruit() {
	pos, ok := g.placer.Place(g.bounds, g.snake.Occupied())
	if !ok {
		// Saturated rows or columns, retry next step
		return
	}
	g.fruit = &Fruit{Pos: pos, Glyph: g.fruitGlyph}
}

// outOfBounds applies the boundary rule
// Lenient mode lets the head sit on row Rows or column Cols before terminating
func (g *Game) outOfBounds(p core.Position) bool {
	if p.Row < 0 || p.Col < 0 {
		return true
	}
	if g.strictBounds {
		return p.Row >= g.bounds.Rows || p.Col >= g.bounds.Cols
	}
	return p.Row > g.bounds.Rows || p.Col > g.bounds.Cols
}

func (g *Game) terminate(c Cause) {
	g.phase = PhaseTerminated
	g.cause = c
}

// PlaceFruit activates fruit at pos, replacing any active fruit
func (g *Game) PlaceFruit(pos core.Position) {
	g.fruit = &Fruit{Pos: pos, Glyph: g.fruitGlyph}
}

// Running reports whether the session accepts further ticks
func (g *Game) Running() bool {
	return g.phase == PhaseRunning
}

// Phase returns the session state
func (g *Game) Phase() Phase {
	return g.phase
}

// Cause returns why the session ended, CauseNone while running
func (g *Game) Cause() Cause {
	return g.cause
}

// Snake returns the session's snake
func (g *Game) Snake() *Snake {
	return g.snake
}

// Fruit returns a copy of the active fruit
func (g *Game) Fruit() (Fruit, bool) {
	if g.fruit == nil {
		return Fruit{}, false
	}
	return *g.fruit, true
}

// Bounds returns the playfield size
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Heading returns the latest captured heading request
func (g *Game) Heading() core.Direction {
	return g.heading
}

// Speed returns the current ticks-per-step threshold
func (g *Game) Speed() int {
	return g.speed
}

// TickCount returns ticks elapsed since the last step
func (g *Game) TickCount() int {
	return g.tickCount
}

// Stats returns a snapshot of session counters
func (g *Game) Stats() Stats {
	return Stats{
		Ticks:       g.totalTicks,
		Steps:       g.steps,
		FruitsEaten: g.fruitsEaten,
		Length:      g.snake.Len(),
		Speed:       g.speed,
	}
}
