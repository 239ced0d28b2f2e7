package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameRate is the target tick rate of the fixed-timestep loop (Hz)
	FrameRate = 60

	// FrameUpdateInterval is the per-tick budget at FrameRate
	FrameUpdateInterval = time.Second / FrameRate

	// InitialSpeed is the starting number of ticks per game step (~3 steps/s at 60 Hz)
	InitialSpeed = FrameRate / 3

	// MinSpeed is the floor of the speed threshold; at 0 the snake advances every tick
	MinSpeed = 0
)

// Playfield Constants
const (
	// StartCol is the column of the initial single-segment snake
	StartCol = 0

	// MinRows and MinCols reject terminals too small to play on
	MinRows = 2
	MinCols = 2
)
