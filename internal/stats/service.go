package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/logger"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

// AccountReader loads the account whose stats are requested
type AccountReader interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

// Service defines the interface for stats operations
type Service interface {
	// Leaderboard ranks accounts by winnings in the last 24h. accountID may be empty.
	Leaderboard(ctx context.Context, accountID string) (*domain.Leaderboard, error)
	AccountStats(ctx context.Context, accountID string) (*domain.AccountStats, error)
	History(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type service struct {
	txns     repository.Transactions
	accounts AccountReader
	rankings *expirable.LRU[string, []domain.LeaderboardEntry]
	now      func() time.Time
}

// NewService creates a new stats service
func NewService(txns repository.Transactions, accounts AccountReader) Service {
	return &service{
		txns:     txns,
		accounts: accounts,
		rankings: expirable.NewLRU[string, []domain.LeaderboardEntry](1, nil, LeaderboardCacheTTL),
		now:      time.Now,
	}
}

func (s *service) Leaderboard(ctx context.Context, accountID string) (*domain.Leaderboard, error) {
	ranking, ok := s.rankings.Get(leaderboardCacheKey)
	if !ok {
		aggs, err := s.txns.AggregateWinsSince(ctx, s.now().Add(-domain.LeaderboardWindow))
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate wins: %w", err)
		}
		ranking = rankWinners(aggs)
		s.rankings.Add(leaderboardCacheKey, ranking)
		logger.FromContext(ctx).Debug(LogMsgLeaderboardComputed, "accounts", len(ranking))
	}
	return buildLeaderboard(ranking, accountID, domain.LeaderboardSize), nil
}

func (s *service) AccountStats(ctx context.Context, accountID string) (*domain.AccountStats, error) {
	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txns.ListTransactions(ctx, domain.TransactionFilter{
		AccountID: accountID,
		Limit:     domain.MaxTransactionsPerAccount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return computeAccountStats(*account, txns, s.now()), nil
}

func (s *service) History(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if !domain.IsValidFilterType(filter.Type) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", domain.ErrInvalidInput, filter.Type)
	}
	txns, err := s.txns.ListTransactions(ctx, filter.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
