package engine

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/core"
)

// Fruit is the single food item on the board
type Fruit struct {
	Pos   core.Position
	Glyph rune
}

// PlacementStrategy selects how a free cell is chosen for new fruit
type PlacementStrategy uint8

const (
	// PlacementRowCol picks a random row with no snake segment and a random column with no snake segment
	// Conservative: a row or column touched by any segment is blocked entirely
	PlacementRowCol PlacementStrategy = iota

	// PlacementScan picks uniformly among every unoccupied cell
	PlacementScan
)

func (s PlacementStrategy) String() string {
	switch s {
	case PlacementRowCol:
		return "rowcol"
	case PlacementScan:
		return "scan"
	default:
		return fmt.Sprintf("placement(%d)", uint8(s))
	}
}

// ParsePlacementStrategy resolves a config name
func ParsePlacementStrategy(name string) (PlacementStrategy, error) {
	switch name {
	case "", "rowcol":
		return PlacementRowCol, nil
	case "scan":
		return PlacementScan, nil
	default:
		return 0, fmt.Errorf("unknown fruit placement %q", name)
	}
}

// FruitPlacer picks cells for new fruit
// Not safe for concurrent use; the game loop is single-threaded
type FruitPlacer struct {
	strategy PlacementStrategy
	rng      *rand.Rand
}

// NewFruitPlacer creates a placer with its own generator seeded once
func NewFruitPlacer(strategy PlacementStrategy, seed uint64) *FruitPlacer {
	return &FruitPlacer{
		strategy: strategy,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Strategy returns the configured placement strategy
func (p *FruitPlacer) Strategy() PlacementStrategy {
	return p.strategy
}

// Place returns a cell within bounds for a new fruit
// ok is false when no candidate exists; the caller skips placement and retries later
func (p *FruitPlacer) Place(bounds core.Bounds, occupied []core.Position) (pos core.Position, ok bool) {
	switch p.strategy {
	case PlacementScan:
		return p.placeScan(bounds, occupied)
	default:
		return p.placeRowCol(bounds, occupied)
	}
}

func (p *FruitPlacer) placeRowCol(bounds core.Bounds, occupied []core.Position) (core.Position, bool) {
	usedRows := make(map[int]struct{}, len(occupied))
	usedCols := make(map[int]struct{}, len(occupied))
	for _, o := range occupied {
		usedRows[o.Row] = struct{}{}
		usedCols[o.Col] = struct{}{}
	}

	freeRows := FreeLines(bounds.Rows, usedRows)
	freeCols := FreeLines(bounds.Cols, usedCols)
	if len(freeRows) == 0 || len(freeCols) == 0 {
		return core.Position{}, false
	}

	return core.Position{
		Row: freeRows[p.rng.Intn(len(freeRows))],
		Col: freeCols[p.rng.Intn(len(freeCols))],
	}, true
}

func (p *FruitPlacer) placeScan(bounds core.Bounds, occupied []core.Position) (core.Position, bool) {
	taken := make(map[core.Position]struct{}, len(occupied))
	for _, o := range occupied {
		if bounds.Contains(o) {
			taken[o] = struct{}{}
		}
	}

	free := bounds.Cells() - len(taken)
	if free <= 0 {
		return core.Position{}, false
	}

	// Walk to the n-th free cell instead of materializing the free set
	n := p.rng.Intn(free)
	for row := 0; row < bounds.Rows; row++ {
		for col := 0; col < bounds.Cols; col++ {
			c := core.Position{Row: row, Col: col}
			if _, ok := taken[c]; ok {
				continue
			}
			if n == 0 {
				return c, true
			}
			n--
		}
	}
	return core.Position{}, false
}

// FreeLines returns the indices in [0,count) absent from used, ascending
func FreeLines(count int, used map[int]struct{}) []int {
	free := make([]int, 0, count)
	for i := 0; i < count; i++ {
		if _, ok := used[i]; !ok {
			free = append(free, i)
		}
	}
	return free
}
