package slots

// WeightTable maps a symbol to its relative draw weight
type WeightTable map[string]int

// Weight returns the draw weight of a symbol, falling back to DefaultSymbolWeight
// when the symbol is absent or has no positive weight
func (w WeightTable) Weight(symbol string) int {
	if v := w[symbol]; v > 0 {
		return v
	}
	return DefaultSymbolWeight
}

// Total returns the multiset size for a symbol list
func (w WeightTable) Total(symbols []string) int {
	total := 0
	for _, s := range symbols {
		total += w.Weight(s)
	}
	return total
}

// Probability returns the chance that a single cell shows symbol
func (w WeightTable) Probability(symbols []string, symbol string) float64 {
	total := w.Total(symbols)
	if total == 0 {
		return 0
	}
	hits := 0
	for _, s := range symbols {
		if s == symbol {
			hits += w.Weight(s)
		}
	}
	return float64(hits) / float64(total)
}
