package slots

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ReelCasino_Go/internal/domain"
)

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Settle(ctx context.Context, accountID string, machine domain.Machine, bet int, result domain.SpinResult) (*domain.Settlement, error) {
	args := m.Called(ctx, accountID, machine, bet, result)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccounts) Refresh(account domain.Account) {
	m.Called(account)
}

type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// fixedReels always returns the same grid
type fixedReels struct {
	grid domain.Grid
}

func (f fixedReels) Generate([]string) domain.Grid {
	return f.grid
}
