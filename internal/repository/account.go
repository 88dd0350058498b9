package repository

import (
	"context"
	"time"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// Account defines the interface for account persistence
type Account interface {
	CreateAccount(ctx context.Context, account *domain.Account) error
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// DeleteDemoAccountsBefore removes demo accounts (and their transactions) created before cutoff
	DeleteDemoAccountsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
