package slots

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

//go:embed machines.yaml
var defaultCatalogYAML []byte

// catalogFile is the on-disk layout of a machine catalog
type catalogFile struct {
	Weights  map[string]int   `yaml:"weights"`
	Machines []domain.Machine `yaml:"machines"`
}

// Catalog is the immutable set of machines and symbol weights shared by every account
type Catalog struct {
	machines []domain.Machine
	byID     map[string]int
	weights  WeightTable
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog reads a catalog from path, or the built-in catalog when path is empty
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	return NewCatalog(file.Machines, file.Weights)
}

// NewCatalog validates machines and weights and takes a private copy of both
func NewCatalog(machines []domain.Machine, weights map[string]int) (*Catalog, error) {
	if len(machines) == 0 {
		return nil, fmt.Errorf("%w: no machines defined", domain.ErrInvalidCatalog)
	}

	c := &Catalog{
		machines: make([]domain.Machine, 0, len(machines)),
		byID:     make(map[string]int, len(machines)),
		weights:  make(WeightTable, len(weights)),
	}

	for symbol, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %d for %q", domain.ErrInvalidCatalog, w, symbol)
		}
		c.weights[symbol] = w
	}

	for _, m := range machines {
		if err := validateMachine(m); err != nil {
			return nil, err
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate machine id %q", domain.ErrInvalidCatalog, m.ID)
		}
		c.byID[m.ID] = len(c.machines)
		c.machines = append(c.machines, cloneMachine(m))
	}

	return c, nil
}

func validateMachine(m domain.Machine) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: machine %q: %s", domain.ErrInvalidCatalog, m.ID, fmt.Sprintf(format, args...))
	}

	switch {
	case m.ID == "":
		return fmt.Errorf("%w: machine without id", domain.ErrInvalidCatalog)
	case m.Name == "":
		return fail("missing name")
	case len(m.Symbols) == 0:
		return fail("no symbols")
	case m.MinBet <= 0 || m.MaxBet <= 0:
		return fail("bets must be positive")
	case m.MinBet > m.MaxBet:
		return fail("min bet %d exceeds max bet %d", m.MinBet, m.MaxBet)
	}

	patterns := make(map[string]struct{}, len(m.Symbols))
	for _, s := range m.Symbols {
		if s == "" {
			return fail("empty symbol")
		}
		patterns[PatternFor(s)] = struct{}{}
	}
	for pattern, multiplier := range m.Payouts {
		if _, ok := patterns[pattern]; !ok {
			return fail("payout key %q is not a machine symbol repeated %d times", pattern, PatternLength)
		}
		if multiplier <= 0 {
			return fail("payout %q must be positive", pattern)
		}
	}
	return nil
}

func cloneMachine(m domain.Machine) domain.Machine {
	m.Symbols = slices.Clone(m.Symbols)
	payouts := make(map[string]int, len(m.Payouts))
	for k, v := range m.Payouts {
		payouts[k] = v
	}
	m.Payouts = payouts
	return m
}

// Machine looks up a machine by id. The returned value shares the catalog's
// payout map and must be treated as read-only.
func (c *Catalog) Machine(id string) (domain.Machine, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Machine{}, false
	}
	return c.machines[idx], true
}

// Machines returns copies of all machines in catalog order
func (c *Catalog) Machines() []domain.Machine {
	out := make([]domain.Machine, len(c.machines))
	for i, m := range c.machines {
		out[i] = cloneMachine(m)
	}
	return out
}

// Weights returns the symbol weight table
func (c *Catalog) Weights() WeightTable {
	return c.weights
}

// Symbols returns every distinct symbol across the catalog, sorted
func (c *Catalog) Symbols() []string {
	seen := make(map[string]struct{})
	for _, m := range c.machines {
		for _, s := range m.Symbols {
			seen[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
