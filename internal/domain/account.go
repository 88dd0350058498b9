package domain

import "time"

// Account represents a player account and its running totals
type Account struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Balance       int       `json:"balance"`        // Spendable credits
	TotalWinnings int       `json:"total_winnings"` // Sum of all payouts
	TotalSpins    int       `json:"total_spins"`
	CreatedAt     time.Time `json:"created_at"`
	IsDemo        bool      `json:"is_demo"` // Demo accounts are purged after DemoTTL
}

// AccountUpdate holds the new totals written by the ledger after a spin
type AccountUpdate struct {
	Balance       int
	TotalWinnings int
	TotalSpins    int
}

// Apply returns a copy of the account with the update applied
func (a Account) Apply(u AccountUpdate) Account {
	a.Balance = u.Balance
	a.TotalWinnings = u.TotalWinnings
	a.TotalSpins = u.TotalSpins
	return a
}
