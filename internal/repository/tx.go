package repository

import (
	"context"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Ledger opens transactions that settle spins
type Ledger interface {
	BeginLedgerTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx groups every write a spin performs so they commit or roll back together
type LedgerTx interface {
	Tx
	// GetAccountForUpdate reads the account and holds it until commit/rollback
	GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error)
	InsertTransaction(ctx context.Context, txn *domain.Transaction) error
	UpdateAccountStats(ctx context.Context, accountID string, update domain.AccountUpdate) error
	// TrimTransactions keeps only the newest keep transactions of the account
	TrimTransactions(ctx context.Context, accountID string, keep int) (int64, error)
}
