package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// psql builds queries with $n placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var accountColumns = []string{
	colID, colUsername, colEmail, colPasswordHash, colBalance,
	colTotalWinnings, colTotalSpins, colIsDemo, colCreatedAt,
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Balance,
		&a.TotalWinnings, &a.TotalSpins, &a.IsDemo, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// getAccount runs a select built by the caller and maps invalid ids to not found
func getAccount(ctx context.Context, q querier, query sq.SelectBuilder) (*domain.Account, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	account, err := scanAccount(q.QueryRow(ctx, sqlStr, args...))
	if isPgError(err, PgErrorCodeInvalidTextRepresentation) {
		return nil, domain.ErrAccountNotFound
	}
	return account, err
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// mapUniqueViolation converts account unique index violations into domain errors
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrorCodeUniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case ConstraintAccountsEmail:
		return domain.ErrEmailTaken
	case ConstraintAccountsUsername:
		return domain.ErrUsernameTaken
	}
	return err
}
