package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

// ListTransactions returns matching transactions newest first
func (s *Store) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filter = filter.Normalize()
	search := strings.ToLower(filter.Search)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, txn := range s.transactions[filter.AccountID] {
		if filter.Type != "" && string(txn.Type) != filter.Type {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(txn.Game), search) {
			continue
		}
		if filter.Since != nil && txn.Timestamp.Before(*filter.Since) {
			continue
		}
		out = append(out, txn)
		if len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// AggregateWinsSince sums win transactions per account
func (s *Store) AggregateWinsSince(ctx context.Context, since time.Time) ([]domain.WinAggregate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byAccount := make(map[string]*domain.WinAggregate)
	for accountID, txns := range s.transactions {
		for _, txn := range txns {
			if txn.Type != domain.TransactionWin || txn.Timestamp.Before(since) {
				continue
			}
			agg, ok := byAccount[accountID]
			if !ok {
				agg = &domain.WinAggregate{AccountID: accountID, Username: s.accounts[accountID].Username}
				byAccount[accountID] = agg
			}
			agg.TotalWinnings += txn.Amount
			agg.WinCount++
		}
	}

	out := make([]domain.WinAggregate, 0, len(byAccount))
	for _, agg := range byAccount {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}
