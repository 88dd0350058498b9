package slots

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// sequenceSource replays fixed rolls
type sequenceSource struct {
	rolls []int
	pos   int
	seen  []int
}

func (s *sequenceSource) Intn(n int) int {
	s.seen = append(s.seen, n)
	roll := s.rolls[s.pos%len(s.rolls)]
	s.pos++
	return roll
}

func TestGenerator_MapsRollsOntoWeightedRanges(t *testing.T) {
	weights := WeightTable{cherry: 30, lemon: 25}
	src := &sequenceSource{rolls: []int{0, 29, 30, 54, 15, 31, 0, 0, 54}}
	gen := NewGenerator(weights, src)

	grid := gen.Generate([]string{cherry, lemon})

	want := domain.Grid{
		{cherry, cherry, lemon},
		{lemon, cherry, lemon},
		{cherry, cherry, lemon},
	}
	assert.Equal(t, want, grid)
	for _, n := range src.seen {
		assert.Equal(t, 55, n, "every cell draws from the full multiset")
	}
}

func TestGenerator_UnweightedSymbolsUseDefault(t *testing.T) {
	src := &sequenceSource{rolls: []int{DefaultSymbolWeight - 1, DefaultSymbolWeight}}
	gen := NewGenerator(WeightTable{}, src)

	grid := gen.Generate([]string{"a", "b"})

	assert.Equal(t, "a", grid[0][0])
	assert.Equal(t, "b", grid[0][1])
	assert.Equal(t, 2*DefaultSymbolWeight, src.seen[0])
}

func TestGenerator_EmptySymbols(t *testing.T) {
	gen := NewGenerator(WeightTable{}, &sequenceSource{rolls: []int{0}})
	assert.Equal(t, domain.Grid{}, gen.Generate(nil))
}

func TestGenerator_SecureSourceStaysInAlphabet(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	machine, ok := catalog.Machine("classic")
	require.True(t, ok)

	gen := NewGenerator(catalog.Weights(), nil)
	for i := 0; i < 200; i++ {
		grid := gen.Generate(machine.Symbols)
		for _, row := range grid {
			for _, symbol := range row {
				assert.True(t, slices.Contains(machine.Symbols, symbol), "unexpected symbol %q", symbol)
			}
		}
	}
}

// TestGenerator_FrequenciesMatchWeights runs a chi-squared goodness of fit
// test of observed cell frequencies against the weight table.
func TestGenerator_FrequenciesMatchWeights(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping distribution test in short mode")
	}

	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	machine, _ := catalog.Machine("classic")
	weights := catalog.Weights()

	r := rand.New(rand.NewPCG(42, 1337))
	gen := NewGenerator(weights, RandomFunc(r.IntN))

	const spins = 20000
	counts := make(map[string]int, len(machine.Symbols))
	for i := 0; i < spins; i++ {
		grid := gen.Generate(machine.Symbols)
		for _, row := range grid {
			for _, symbol := range row {
				counts[symbol]++
			}
		}
	}

	cells := float64(spins * domain.GridSize * domain.GridSize)
	chi2 := 0.0
	for _, symbol := range machine.Symbols {
		expected := cells * weights.Probability(machine.Symbols, symbol)
		diff := float64(counts[symbol]) - expected
		chi2 += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: float64(len(machine.Symbols) - 1)}
	pValue := dist.Survival(chi2)
	assert.Greater(t, pValue, 0.001, "chi2=%.2f counts=%v", chi2, counts)
}

func BenchmarkGenerator_Generate(b *testing.B) {
	catalog, err := DefaultCatalog()
	require.NoError(b, err)
	machine, _ := catalog.Machine("classic")
	gen := NewGenerator(catalog.Weights(), nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Generate(machine.Symbols)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	grid := losingGrid
	grid[0] = [3]string{cherry, cherry, cherry}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(grid, classicPayouts, 10)
	}
}
