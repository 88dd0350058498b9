package slots

import (
	"sort"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// ReelGenerator builds the grid for a spin
type ReelGenerator interface {
	Generate(symbols []string) domain.Grid
}

// Generator draws every cell independently from the weighted symbol multiset
type Generator struct {
	weights WeightTable
	rng     RandomSource
}

// NewGenerator creates a weighted reel generator
func NewGenerator(weights WeightTable, rng RandomSource) *Generator {
	if rng == nil {
		rng = NewSecureSource()
	}
	return &Generator{weights: weights, rng: rng}
}

// Generate returns a fresh 3x3 grid drawn from symbols
func (g *Generator) Generate(symbols []string) domain.Grid {
	var grid domain.Grid
	if len(symbols) == 0 {
		return grid
	}

	cumulative := g.cumulativeWeights(symbols)
	for row := range grid {
		for col := range grid[row] {
			grid[row][col] = g.draw(symbols, cumulative)
		}
	}
	return grid
}

// cumulativeWeights lays the multiset out as running totals so a single roll
// in [0, total) selects the same symbol a uniform multiset draw would
func (g *Generator) cumulativeWeights(symbols []string) []int {
	cumulative := make([]int, len(symbols))
	running := 0
	for i, s := range symbols {
		running += g.weights.Weight(s)
		cumulative[i] = running
	}
	return cumulative
}

func (g *Generator) draw(symbols []string, cumulative []int) string {
	roll := g.rng.Intn(cumulative[len(cumulative)-1])
	idx := sort.SearchInts(cumulative, roll+1)
	return symbols[idx]
}
