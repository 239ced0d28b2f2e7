package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/render/renderers"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := terminal.RequireTTY(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake needs an interactive terminal: %v\n", err)
		os.Exit(1)
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(term.Fini)

	stats, cause, err := run(cfg, term)

	// Normal exit terminal cleanup
	core.SetCrashCleanup(nil)
	term.Fini()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	log.Printf("session end: cause=%s length=%d fruits=%d steps=%d ticks=%d speed=%d",
		cause, stats.Length, stats.FruitsEaten, stats.Steps, stats.Ticks, stats.Speed)
}

// run wires one session onto an initialized terminal and blocks until it terminates
func run(cfg config.Config, term *terminal.Terminal) (engine.Stats, engine.Cause, error) {
	bounds := term.Size()
	if bounds.Rows < constants.MinRows || bounds.Cols < constants.MinCols {
		return engine.Stats{}, engine.CauseNone, fmt.Errorf("terminal too small: %dx%d", bounds.Cols, bounds.Rows)
	}

	game, err := newGame(cfg, bounds, uint64(time.Now().UnixNano()))
	if err != nil {
		return engine.Stats{}, engine.CauseNone, err
	}

	orchestrator := render.NewRenderOrchestrator(term)
	orchestrator.Register(renderers.NewSnakeRenderer(constants.SnakeStyle), render.PriorityEntities)
	orchestrator.Register(renderers.NewFruitRenderer(constants.FruitStyle), render.PriorityFood)

	source := input.NewSource(term, input.NewMachine(cfg.QuitRune()))
	loop := engine.NewLoop(game, source, orchestrator, engine.NewMonotonicTimeProvider(), cfg.FrameRate)

	log.Printf("session start: grid=%dx%d fps=%d speed=%d placement=%s strict=%v",
		bounds.Rows, bounds.Cols, cfg.FrameRate, cfg.Speed(), cfg.FruitPlacement, cfg.StrictBounds)

	loop.Run()

	return game.Stats(), game.Cause(), nil
}

// newGame builds the session state from configuration
func newGame(cfg config.Config, bounds core.Bounds, seed uint64) (*engine.Game, error) {
	strategy, err := engine.ParsePlacementStrategy(cfg.FruitPlacement)
	if err != nil {
		return nil, err
	}
	speed := cfg.Speed()

	return engine.NewGame(engine.GameConfig{
		Bounds:       bounds,
		InitialSpeed: &speed,
		StrictBounds: cfg.StrictBounds,
		SnakeGlyph:   cfg.SnakeRune(),
		FruitGlyph:   cfg.FruitRune(),
		Placer:       engine.NewFruitPlacer(strategy, seed),
	}), nil
}
