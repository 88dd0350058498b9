package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// rankWinners orders aggregates by winnings descending, ties broken by username
// then account id, and assigns 1-based ranks
func rankWinners(aggs []domain.WinAggregate) []domain.LeaderboardEntry {
	sorted := make([]domain.WinAggregate, len(aggs))
	copy(sorted, aggs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.TotalWinnings != b.TotalWinnings {
			return a.TotalWinnings > b.TotalWinnings
		}
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		return a.AccountID < b.AccountID
	})

	entries := make([]domain.LeaderboardEntry, len(sorted))
	for i, agg := range sorted {
		entries[i] = domain.LeaderboardEntry{
			Rank:          i + 1,
			AccountID:     agg.AccountID,
			Username:      agg.Username,
			TotalWinnings: agg.TotalWinnings,
			WinCount:      agg.WinCount,
		}
	}
	return entries
}

// buildLeaderboard cuts the ranking to size and locates the caller
func buildLeaderboard(ranking []domain.LeaderboardEntry, accountID string, size int) *domain.Leaderboard {
	board := &domain.Leaderboard{
		Entries:  make([]domain.LeaderboardEntry, 0, min(size, len(ranking))),
		UserRank: domain.RankNotPresent,
	}
	for _, entry := range ranking {
		if len(board.Entries) < size {
			board.Entries = append(board.Entries, entry)
		}
		if accountID != "" && entry.AccountID == accountID {
			board.UserRank = entry.Rank
		}
	}
	return board
}

// percent returns part/whole*100 rounded, or zero when whole is zero
func percent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(percentPlaces)
}

// computeAccountStats derives dashboard figures from the account totals and its transaction log
func computeAccountStats(account domain.Account, txns []domain.Transaction, now time.Time) *domain.AccountStats {
	stats := &domain.AccountStats{
		Balance:    account.Balance,
		TotalSpins: account.TotalSpins,
	}

	spinsByGame := make(map[string]int)
	for _, txn := range txns {
		switch txn.Type {
		case domain.TransactionSpin:
			stats.TotalSpent += -txn.Amount
			spinsByGame[txn.Game]++
		case domain.TransactionWin:
			stats.TotalWon += txn.Amount
			stats.WinCount++
			stats.BiggestWin = max(stats.BiggestWin, txn.Amount)
		}
	}

	stats.NetProfit = stats.TotalWon - stats.TotalSpent
	stats.WinRate = percent(stats.WinCount, account.TotalSpins)
	stats.RTP = percent(stats.TotalWon, stats.TotalSpent)
	if account.TotalSpins > 0 {
		stats.AverageBet = decimal.NewFromInt(int64(stats.TotalSpent)).
			Div(decimal.NewFromInt(int64(account.TotalSpins))).
			Round(percentPlaces)
	}
	stats.MostPlayedGame = mostPlayed(spinsByGame)
	stats.Daily = dailyStats(txns, now, domain.DailyStatsDays)
	return stats
}

// mostPlayed picks the game with the most spins, ties broken lexically
func mostPlayed(spinsByGame map[string]int) string {
	best, bestCount := "", 0
	for game, count := range spinsByGame {
		if count > bestCount || (count == bestCount && game < best) {
			best, bestCount = game, count
		}
	}
	return best
}

// dailyStats buckets transactions into the last days UTC calendar days, oldest first
func dailyStats(txns []domain.Transaction, now time.Time, days int) []domain.DailyStat {
	out := make([]domain.DailyStat, days)
	index := make(map[string]int, days)
	today := now.UTC()
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i-days+1).Format(DateLayout)
		out[i] = domain.DailyStat{Date: date}
		index[date] = i
	}

	for _, txn := range txns {
		i, ok := index[txn.Timestamp.UTC().Format(DateLayout)]
		if !ok {
			continue
		}
		switch txn.Type {
		case domain.TransactionSpin:
			out[i].Spins++
		case domain.TransactionWin:
			out[i].Winnings += txn.Amount
		}
	}
	return out
}
