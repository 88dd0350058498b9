package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

// LedgerRepository opens settlement transactions
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) repository.Ledger {
	return &LedgerRepository{pool: pool}
}

// BeginLedgerTx starts a database transaction for one settlement
func (r *LedgerRepository) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &ledgerTx{tx: tx}, nil
}

// ledgerTx wraps pgx.Tx
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Rollback reports pgx.ErrTxClosed with the shared message so SafeRollback stays quiet
func (t *ledgerTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return errors.New(domain.ErrMsgTxClosed)
	}
	return err
}

// GetAccountForUpdate locks the account row until the transaction ends
func (t *ledgerTx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	query := psql.Select(accountColumns...).
		From(tableAccounts).
		Where(sq.Eq{colID: accountID}).
		Suffix("FOR UPDATE")

	account, err := getAccount(ctx, t.tx, query)
	if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAccountForUpdate, err)
	}
	return account, err
}

func (t *ledgerTx) InsertTransaction(ctx context.Context, txn *domain.Transaction) error {
	details, err := marshalDetails(txn.Details)
	if err != nil {
		return err
	}

	sqlStr, args, err := psql.Insert(tableTransactions).
		Columns(transactionColumns...).
		Values(txn.ID, txn.AccountID, string(txn.Type), txn.Amount, txn.Game, details, txn.Timestamp).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	if _, err := t.tx.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTransaction, err)
	}
	return nil
}

func (t *ledgerTx) UpdateAccountStats(ctx context.Context, accountID string, update domain.AccountUpdate) error {
	sqlStr, args, err := psql.Update(tableAccounts).
		Set(colBalance, update.Balance).
		Set(colTotalWinnings, update.TotalWinnings).
		Set(colTotalSpins, update.TotalSpins).
		Where(sq.Eq{colID: accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	tag, err := t.tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateAccount, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// TrimTransactions deletes everything older than the newest keep rows of the account
func (t *ledgerTx) TrimTransactions(ctx context.Context, accountID string, keep int) (int64, error) {
	newest := psql.Select(colID).
		From(tableTransactions).
		Where(sq.Eq{colAccountID: accountID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(keep))

	sqlStr, args, err := psql.Delete(tableTransactions).
		Where(sq.Eq{colAccountID: accountID}).
		Where(sq.Expr(colID+" NOT IN (?)", newest)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	tag, err := t.tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToTrimTransactions, err)
	}
	return tag.RowsAffected(), nil
}
