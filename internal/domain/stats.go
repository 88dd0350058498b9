package domain

import "github.com/shopspring/decimal"

// LeaderboardEntry is one row of the 24h winnings leaderboard
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	AccountID     string `json:"account_id"`
	Username      string `json:"username"`
	TotalWinnings int    `json:"total_winnings"`
	WinCount      int    `json:"win_count"`
}

// Leaderboard is the top of the ranking plus the caller's own position
type Leaderboard struct {
	Entries  []LeaderboardEntry `json:"entries"`
	UserRank int                `json:"user_rank"` // -1 when the caller has no wins in the window
}

// DailyStat aggregates one calendar day (UTC)
type DailyStat struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Spins    int    `json:"spins"`
	Winnings int    `json:"winnings"`
}

// AccountStats backs the dashboard
type AccountStats struct {
	Balance        int             `json:"balance"`
	TotalSpins     int             `json:"total_spins"`
	TotalSpent     int             `json:"total_spent"`
	TotalWon       int             `json:"total_won"`
	NetProfit      int             `json:"net_profit"`
	WinCount       int             `json:"win_count"`
	WinRate        decimal.Decimal `json:"win_rate"` // Percent of spins that paid
	RTP            decimal.Decimal `json:"rtp"`      // Percent of wagered credits returned
	AverageBet     decimal.Decimal `json:"average_bet"`
	BiggestWin     int             `json:"biggest_win"`
	MostPlayedGame string          `json:"most_played_game,omitempty"`
	Daily          []DailyStat     `json:"daily"`
}

// WinAggregate is a per-account sum of win transactions
type WinAggregate struct {
	AccountID     string
	Username      string
	TotalWinnings int
	WinCount      int
}
