package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/ReelCasino_Go/internal/concurrency"
	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/logger"
	"github.com/osse101/ReelCasino_Go/internal/metrics"
)

// Ledger settles a drawn result against the account
type Ledger interface {
	Settle(ctx context.Context, accountID string, machine domain.Machine, bet int, result domain.SpinResult) (*domain.Settlement, error)
}

// AccountProvider reads accounts and is told about settled balances
type AccountProvider interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	Refresh(account domain.Account)
}

// RateLimiter reports whether key may perform another spin
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Service defines the interface for slot operations
type Service interface {
	Spin(ctx context.Context, accountID, machineID string, bet int) (*domain.SpinOutcome, error)
	GetMachine(machineID string) (domain.Machine, error)
	ListMachines() []domain.Machine
}

type service struct {
	catalog  *Catalog
	reels    ReelGenerator
	ledger   Ledger
	accounts AccountProvider
	limiter  RateLimiter
	locks    *concurrency.LockManager
	now      func() time.Time
}

// NewService creates a new slots service. A nil limiter disables rate limiting
// and nil locks gets a private lock manager.
func NewService(
	catalog *Catalog,
	reels ReelGenerator,
	ledger Ledger,
	accounts AccountProvider,
	limiter RateLimiter,
	locks *concurrency.LockManager,
) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		catalog:  catalog,
		reels:    reels,
		ledger:   ledger,
		accounts: accounts,
		limiter:  limiter,
		locks:    locks,
		now:      time.Now,
	}
}

func (s *service) GetMachine(machineID string) (domain.Machine, error) {
	machine, ok := s.catalog.Machine(machineID)
	if !ok {
		return domain.Machine{}, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, machineID)
	}
	return machine, nil
}

func (s *service) ListMachines() []domain.Machine {
	return s.catalog.Machines()
}

// Spin validates the request, draws a grid, evaluates it and settles the
// result. Spins of one account run one at a time.
func (s *service) Spin(ctx context.Context, accountID, machineID string, bet int) (*domain.SpinOutcome, error) {
	log := logger.FromContext(ctx)
	start := s.now()

	if accountID == "" {
		return nil, s.reject(ctx, RejectNotAuthenticated, domain.ErrNotAuthenticated)
	}

	lock := s.locks.GetLock(accountID)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, s.reject(ctx, RejectNotAuthenticated, fmt.Errorf("%w: %s", domain.ErrNotAuthenticated, accountID))
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if account.Balance < bet {
		return nil, s.reject(ctx, RejectInsufficientBalance,
			fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientBalance, account.Balance, bet))
	}

	machine, ok := s.catalog.Machine(machineID)
	if !ok {
		return nil, s.reject(ctx, RejectMachineNotFound, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, machineID))
	}

	if bet < machine.MinBet || bet > machine.MaxBet {
		return nil, s.reject(ctx, RejectBetOutOfRange,
			fmt.Errorf("%w: bet must be between %d and %d", domain.ErrBetOutOfRange, machine.MinBet, machine.MaxBet))
	}

	if err := s.checkRateLimit(ctx, accountID); err != nil {
		return nil, err
	}

	grid := s.reels.Generate(machine.Symbols)
	result := Evaluate(grid, machine.Payouts, bet)

	settlement, err := s.ledger.Settle(ctx, accountID, machine, bet, result)
	if err != nil {
		reason := RejectSettlementFailed
		if errors.Is(err, domain.ErrInsufficientBalance) {
			reason = RejectInsufficientBalance
		}
		metrics.RecordSpinRejected(reason)
		return nil, fmt.Errorf("failed to settle spin: %w", err)
	}

	s.accounts.Refresh(settlement.Account)
	metrics.RecordSpin(machine.ID, bet, result.Payout, result.IsJackpot, s.now().Sub(start))

	trigger := DetermineTrigger(result, bet)
	log.Info(LogMsgSpinCompleted,
		"account_id", accountID,
		"machine_id", machine.ID,
		"bet", bet,
		"payout", result.Payout,
		"lines", result.WinningLines,
		"trigger", trigger,
		"balance", settlement.Account.Balance)

	return &domain.SpinOutcome{
		MachineID:    machine.ID,
		Bet:          bet,
		Result:       result,
		Trigger:      trigger,
		Balance:      settlement.Account.Balance,
		Account:      settlement.Account,
		Transactions: settlement.Transactions,
	}, nil
}

// checkRateLimit allows the spin when the limiter itself errors
func (s *service) checkRateLimit(ctx context.Context, accountID string) error {
	if s.limiter == nil {
		return nil
	}
	allowed, err := s.limiter.Allow(ctx, RateLimitKeyPrefix+accountID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRateLimitCheckFail, "account_id", accountID, "error", err)
		return nil
	}
	if !allowed {
		return s.reject(ctx, RejectRateLimited, fmt.Errorf("%w: %s", domain.ErrRateLimited, accountID))
	}
	return nil
}

func (s *service) reject(ctx context.Context, reason string, err error) error {
	metrics.RecordSpinRejected(reason)
	logger.FromContext(ctx).Debug(LogMsgSpinRejected, "reason", reason, "error", err)
	return err
}
