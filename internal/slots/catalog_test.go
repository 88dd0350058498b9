package slots

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	machines := catalog.Machines()
	require.Len(t, machines, 3)
	assert.Equal(t, []string{"classic", "diamond", "egyptian"},
		[]string{machines[0].ID, machines[1].ID, machines[2].ID})

	classic, ok := catalog.Machine("classic")
	require.True(t, ok)
	assert.Equal(t, "Classic Slots", classic.Name)
	assert.Equal(t, 1, classic.MinBet)
	assert.Equal(t, 100, classic.MaxBet)
	assert.Equal(t, 10, classic.Multiplier("🍒🍒🍒"))
	assert.Equal(t, 500, classic.Multiplier("7️⃣7️⃣7️⃣"))
	assert.Zero(t, classic.Multiplier("💍💍💍"))

	assert.Equal(t, 30, catalog.Weights().Weight(cherry))
	assert.Equal(t, 1, catalog.Weights().Weight(seven))

	_, ok = catalog.Machine("missing")
	assert.False(t, ok)
}

// Every payout key must be reachable by some winning line
func TestDefaultCatalog_PayoutKeysMatchSymbols(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	for _, m := range catalog.Machines() {
		assert.Len(t, m.Payouts, len(m.Symbols), "machine %s", m.ID)
		for _, s := range m.Symbols {
			assert.Contains(t, m.Payouts, PatternFor(s), "machine %s symbol %s", m.ID, s)
		}
	}
}

func TestCatalog_MachinesReturnsCopies(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	machines := catalog.Machines()
	machines[0].Payouts["🍒🍒🍒"] = 9999
	machines[0].Symbols[0] = "x"

	classic, _ := catalog.Machine("classic")
	assert.Equal(t, 10, classic.Payouts["🍒🍒🍒"])
	assert.Equal(t, cherry, classic.Symbols[0])
}

func TestCatalog_Symbols(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	symbols := catalog.Symbols()
	assert.Len(t, symbols, 20)
	assert.IsIncreasing(t, symbols)
}

func TestNewCatalog_Validation(t *testing.T) {
	valid := func() domain.Machine {
		return domain.Machine{
			ID:      "m",
			Name:    "Machine",
			MinBet:  1,
			MaxBet:  10,
			Symbols: []string{"a", "b"},
			Payouts: map[string]int{"aaa": 5},
		}
	}

	tests := []struct {
		name     string
		machines func() []domain.Machine
		weights  map[string]int
	}{
		{"no machines", func() []domain.Machine { return nil }, nil},
		{"missing id", func() []domain.Machine { m := valid(); m.ID = ""; return []domain.Machine{m} }, nil},
		{"missing name", func() []domain.Machine { m := valid(); m.Name = ""; return []domain.Machine{m} }, nil},
		{"no symbols", func() []domain.Machine { m := valid(); m.Symbols = nil; return []domain.Machine{m} }, nil},
		{"zero min bet", func() []domain.Machine { m := valid(); m.MinBet = 0; return []domain.Machine{m} }, nil},
		{"min above max", func() []domain.Machine { m := valid(); m.MinBet = 20; return []domain.Machine{m} }, nil},
		{"empty symbol", func() []domain.Machine { m := valid(); m.Symbols = []string{""}; return []domain.Machine{m} }, nil},
		{"foreign payout key", func() []domain.Machine { m := valid(); m.Payouts["ccc"] = 3; return []domain.Machine{m} }, nil},
		{"non-positive multiplier", func() []domain.Machine { m := valid(); m.Payouts["bbb"] = 0; return []domain.Machine{m} }, nil},
		{"duplicate id", func() []domain.Machine { return []domain.Machine{valid(), valid()} }, nil},
		{"negative weight", func() []domain.Machine { return []domain.Machine{valid()} }, map[string]int{"a": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.machines(), tt.weights)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path uses built-in catalog", func(t *testing.T) {
		catalog, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Len(t, catalog.Machines(), 3)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "machines.yaml")
		data := []byte(`
weights:
  "a": 5
machines:
  - id: tiny
    name: Tiny
    min_bet: 1
    max_bet: 2
    symbols: ["a", "b"]
    payouts:
      "aaa": 3
`)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)
		m, ok := catalog.Machine("tiny")
		require.True(t, ok)
		assert.Equal(t, 3, m.Multiplier("aaa"))
		assert.Equal(t, 5, catalog.Weights().Weight("a"))
		assert.Equal(t, DefaultSymbolWeight, catalog.Weights().Weight("b"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseCatalog([]byte("machines: [:"))
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}
