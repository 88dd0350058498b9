package domain

import "time"

// History filter values accepted from clients
const (
	FilterAll  = "all"
	FilterSpin = "spin"
	FilterWin  = "win"
)

// Default and maximum number of rows returned by a history query
const (
	DefaultHistoryLimit = 100
	MaxHistoryLimit     = MaxTransactionsPerAccount
)

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	AccountID string
	Type      string     // "", "all", "spin" or "win"
	Search    string     // Case-insensitive substring of the game name
	Since     *time.Time // Only transactions at or after this instant
	Limit     int
}

// IsValidFilterType checks if a filter string is valid (empty string is valid = no filter)
func IsValidFilterType(filter string) bool {
	switch filter {
	case "", FilterAll, FilterSpin, FilterWin:
		return true
	}
	return false
}

// Normalize fills defaults and clamps the limit
func (f TransactionFilter) Normalize() TransactionFilter {
	if f.Type == FilterAll {
		f.Type = ""
	}
	if f.Limit <= 0 {
		f.Limit = DefaultHistoryLimit
	}
	if f.Limit > MaxHistoryLimit {
		f.Limit = MaxHistoryLimit
	}
	return f
}
