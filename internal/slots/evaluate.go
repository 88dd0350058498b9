package slots

import (
	"strings"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// cell addresses a grid position as {row, column}
type cell [2]int

// Lines lists the three cells of every payline, in evaluation order
var Lines = [LineCount][domain.GridSize]cell{
	LineTopRow:       {{0, 0}, {0, 1}, {0, 2}},
	LineMiddleRow:    {{1, 0}, {1, 1}, {1, 2}},
	LineBottomRow:    {{2, 0}, {2, 1}, {2, 2}},
	LineLeftColumn:   {{0, 0}, {1, 0}, {2, 0}},
	LineCenterColumn: {{0, 1}, {1, 1}, {2, 1}},
	LineRightColumn:  {{0, 2}, {1, 2}, {2, 2}},
	LineMainDiagonal: {{0, 0}, {1, 1}, {2, 2}},
	LineAntiDiagonal: {{0, 2}, {1, 1}, {2, 0}},
}

// PatternFor returns the payout table key for three of symbol
func PatternFor(symbol string) string {
	return strings.Repeat(symbol, PatternLength)
}

// Evaluate scans all paylines of grid against the payout table.
// Each winning line pays multiplier x bet independently.
func Evaluate(grid domain.Grid, payouts map[string]int, bet int) domain.SpinResult {
	result := domain.SpinResult{
		Grid:         grid,
		WinningLines: []int{},
	}

	for idx, line := range Lines {
		symbol, ok := lineSymbol(grid, line)
		if !ok {
			continue
		}

		multiplier := payouts[PatternFor(symbol)]
		if multiplier <= 0 {
			continue
		}

		result.WinningLines = append(result.WinningLines, idx)
		result.Payout += multiplier * bet
		if multiplier >= JackpotMultiplier {
			result.IsJackpot = true
		}
	}

	return result
}

// lineSymbol returns the shared symbol of a line when all three cells match
func lineSymbol(grid domain.Grid, line [domain.GridSize]cell) (string, bool) {
	first := grid[line[0][0]][line[0][1]]
	for _, c := range line[1:] {
		if grid[c[0]][c[1]] != first {
			return "", false
		}
	}
	return first, true
}

// DetermineTrigger classifies a result for client-side effects
func DetermineTrigger(result domain.SpinResult, bet int) string {
	switch {
	case result.IsJackpot:
		return TriggerJackpot
	case result.Payout == 0:
		return TriggerLoss
	case bet > 0 && result.Payout >= bet*BigWinMultiplier:
		return TriggerBigWin
	default:
		return TriggerWin
	}
}
