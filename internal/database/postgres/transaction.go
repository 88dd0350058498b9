package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/logger"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

// TransactionRepository implements repository.Transactions for PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) repository.Transactions {
	return &TransactionRepository{pool: pool}
}

var transactionColumns = []string{
	colID, colAccountID, colType, colAmount, colGame, colDetails, colCreatedAt,
}

// ListTransactions returns matching transactions newest first
func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	filter = filter.Normalize()

	query := psql.Select(transactionColumns...).
		From(tableTransactions).
		Where(sq.Eq{colAccountID: filter.AccountID}).
		OrderBy(colCreatedAt+" DESC", colID+" DESC").
		Limit(uint64(filter.Limit))
	if filter.Type != "" {
		query = query.Where(sq.Eq{colType: filter.Type})
	}
	if filter.Search != "" {
		query = query.Where(sq.ILike{colGame: "%" + filter.Search + "%"})
	}
	if filter.Since != nil {
		query = query.Where(sq.GtOrEq{colCreatedAt: *filter.Since})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		if isPgError(err, PgErrorCodeInvalidTextRepresentation) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(ctx, rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
	}
	return txns, nil
}

// AggregateWinsSince sums win transactions per account at or after since
func (r *TransactionRepository) AggregateWinsSince(ctx context.Context, since time.Time) ([]domain.WinAggregate, error) {
	sqlStr, args, err := psql.Select(
		"t."+colAccountID,
		"a."+colUsername,
		"COALESCE(SUM(t."+colAmount+"), 0)",
		"COUNT(*)",
	).
		From(tableTransactions + " t").
		Join(tableAccounts + " a ON a." + colID + " = t." + colAccountID).
		Where(sq.Eq{"t." + colType: string(domain.TransactionWin)}).
		Where(sq.GtOrEq{"t." + colCreatedAt: since}).
		GroupBy("t."+colAccountID, "a."+colUsername).
		OrderBy("t." + colAccountID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregateWins, err)
	}
	defer rows.Close()

	out := make([]domain.WinAggregate, 0)
	for rows.Next() {
		var agg domain.WinAggregate
		if err := rows.Scan(&agg.AccountID, &agg.Username, &agg.TotalWinnings, &agg.WinCount); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregateWins, err)
		}
		out = append(out, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregateWins, err)
	}
	return out, nil
}

// scanTransaction reads one row. Unreadable details are dropped rather than failing the listing.
func scanTransaction(ctx context.Context, row pgx.Row) (*domain.Transaction, error) {
	var (
		txn     domain.Transaction
		txnType string
		details []byte
	)
	if err := row.Scan(&txn.ID, &txn.AccountID, &txnType, &txn.Amount, &txn.Game, &details, &txn.Timestamp); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTransactions, err)
	}
	txn.Type = domain.TransactionType(txnType)
	txn.Timestamp = txn.Timestamp.UTC()

	if len(details) > 0 {
		var d domain.TransactionDetails
		if err := json.Unmarshal(details, &d); err != nil {
			logger.FromContext(ctx).Warn(ErrMsgFailedToUnmarshalDetails, "transaction_id", txn.ID, "error", err)
		} else {
			txn.Details = &d
		}
	}
	return &txn, nil
}

func marshalDetails(details *domain.TransactionDetails) ([]byte, error) {
	if details == nil {
		return nil, nil
	}
	data, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMarshalDetails, err)
	}
	return data, nil
}
