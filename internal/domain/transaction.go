package domain

import "time"

// TransactionType classifies ledger entries
type TransactionType string

const (
	TransactionSpin       TransactionType = "spin"
	TransactionWin        TransactionType = "win"
	TransactionDeposit    TransactionType = "deposit"    // Reserved
	TransactionWithdrawal TransactionType = "withdrawal" // Reserved
)

// MaxTransactionsPerAccount caps the retained history per account; oldest entries are trimmed
const MaxTransactionsPerAccount = 1000

// Transaction is an append-only ledger entry
type Transaction struct {
	ID        string              `json:"id"`
	AccountID string              `json:"account_id"`
	Type      TransactionType     `json:"type"`
	Amount    int                 `json:"amount"` // Negative for debits
	Game      string              `json:"game"`   // Machine display name
	Timestamp time.Time           `json:"timestamp"`
	Details   *TransactionDetails `json:"details,omitempty"`
}

// TransactionDetails carries the spin that produced a transaction
type TransactionDetails struct {
	MachineID string      `json:"machine_id"`
	BetAmount int         `json:"bet_amount"`
	Result    *SpinResult `json:"result,omitempty"`
}

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSpin, TransactionWin, TransactionDeposit, TransactionWithdrawal:
		return true
	}
	return false
}
