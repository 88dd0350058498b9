package repository

import (
	"context"
	"time"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// Transactions defines read access to the transaction log
type Transactions interface {
	// ListTransactions returns matching transactions newest first
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	// AggregateWinsSince sums win transactions per account at or after since
	AggregateWinsSince(ctx context.Context, since time.Time) ([]domain.WinAggregate, error)
}
