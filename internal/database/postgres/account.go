package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(pool *pgxpool.Pool) repository.Account {
	return &AccountRepository{pool: pool}
}

// CreateAccount inserts a new account row
func (r *AccountRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	sqlStr, args, err := psql.Insert(tableAccounts).
		Columns(accountColumns...).
		Values(account.ID, account.Username, account.Email, account.PasswordHash, account.Balance,
			account.TotalWinnings, account.TotalSpins, account.IsDemo, createdAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAccount, err)
	}

	account.CreatedAt = createdAt
	return nil
}

// GetAccountByID returns the account or domain.ErrAccountNotFound
func (r *AccountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := psql.Select(accountColumns...).
		From(tableAccounts).
		Where(sq.Eq{colID: accountID})

	account, err := getAccount(ctx, r.pool, query)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return account, err
}

// GetAccountByEmail looks an account up by case-insensitive email
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := psql.Select(accountColumns...).
		From(tableAccounts).
		Where(sq.Expr("lower("+colEmail+") = ?", strings.ToLower(email)))

	account, err := getAccount(ctx, r.pool, query)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccount, err)
	}
	return account, err
}

// DeleteDemoAccountsBefore removes demo accounts created before cutoff.
// Their transactions go with them through ON DELETE CASCADE.
func (r *AccountRepository) DeleteDemoAccountsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	sqlStr, args, err := psql.Delete(tableAccounts).
		Where(sq.Eq{colIsDemo: true}).
		Where(sq.Lt{colCreatedAt: cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteDemoAccounts, err)
	}
	return tag.RowsAffected(), nil
}
