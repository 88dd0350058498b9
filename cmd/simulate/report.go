package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// tally accumulates spin outcomes for one machine
type tally struct {
	machine  domain.Machine
	bet      int
	spins    int
	hits     int
	jackpots int
	wagered  int64
	paid     int64
	maxWin   int
}

func (t *tally) record(result domain.SpinResult) {
	t.spins++
	t.wagered += int64(t.bet)
	t.paid += int64(result.Payout)
	if result.Payout > 0 {
		t.hits++
	}
	if result.IsJackpot {
		t.jackpots++
	}
	if result.Payout > t.maxWin {
		t.maxWin = result.Payout
	}
}

func (t *tally) merge(o tally) {
	t.spins += o.spins
	t.hits += o.hits
	t.jackpots += o.jackpots
	t.wagered += o.wagered
	t.paid += o.paid
	if o.maxWin > t.maxWin {
		t.maxWin = o.maxWin
	}
}

// rtp returns paid/wagered as a fraction
func (t tally) rtp() float64 {
	if t.wagered == 0 {
		return 0
	}
	return float64(t.paid) / float64(t.wagered)
}

// clopperPearson returns the exact binomial interval for k successes in n trials
func clopperPearson(k, n int, confidence float64) (lo, hi float64) {
	if n == 0 {
		return 0, 1
	}
	alpha := 1 - confidence
	if k > 0 {
		lo = distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}.Quantile(alpha / 2)
	}
	hi = 1
	if k < n {
		hi = distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}.Quantile(1 - alpha/2)
	}
	return lo, hi
}

var reportColumns = []string{"Machine", "Bet", "Spins", "RTP", "Hit rate", "Hit rate CI", "Jackpot rate", "Max win"}

// renderReport formats one row per machine; emoji-safe widths come from runewidth
func renderReport(results []tally, confidence float64) string {
	p := message.NewPrinter(language.English)

	rows := make([][]string, 0, len(results))
	for _, t := range results {
		lo, hi := clopperPearson(t.hits, t.spins, confidence)
		var hitRate, jackpotRate float64
		if t.spins > 0 {
			hitRate = float64(t.hits) / float64(t.spins)
			jackpotRate = float64(t.jackpots) / float64(t.spins)
		}
		rows = append(rows, []string{
			t.machine.Name,
			p.Sprintf("%d", t.bet),
			p.Sprintf("%d", t.spins),
			p.Sprintf("%.2f%%", t.rtp()*100),
			p.Sprintf("%.2f%%", hitRate*100),
			p.Sprintf("%.2f%% - %.2f%%", lo*100, hi*100),
			p.Sprintf("%.4f%% (%d)", jackpotRate*100, t.jackpots),
			p.Sprintf("%d", t.maxWin),
		})
	}

	widths := make([]int, len(reportColumns))
	for i, c := range reportColumns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	divider := func() {
		b.WriteString("+")
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2))
			b.WriteString("+")
		}
		b.WriteString("\n")
	}
	line := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			b.WriteString(" ")
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	divider()
	line(reportColumns)
	divider()
	for _, row := range rows {
		line(row)
	}
	divider()
	b.WriteString(p.Sprintf("Hit-rate interval: %.0f%% Clopper-Pearson\n", confidence*100))
	return b.String()
}
