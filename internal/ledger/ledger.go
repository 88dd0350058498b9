// Package ledger applies spin outcomes to accounts and the transaction log.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/logger"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

// Ledger settles spins against the repository
type Ledger struct {
	repo  repository.Ledger
	now   func() time.Time
	newID func() (uuid.UUID, error)
}

// New creates a ledger backed by repo
func New(repo repository.Ledger) *Ledger {
	return &Ledger{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewV7,
	}
}

// Settle records the bet debit, the optional win credit and the single account
// update for one spin inside one repository transaction
func (l *Ledger) Settle(ctx context.Context, accountID string, machine domain.Machine, bet int, result domain.SpinResult) (*domain.Settlement, error) {
	log := logger.FromContext(ctx)

	tx, err := l.repo.BeginLedgerTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	// The orchestrator checked the balance before drawing; re-check under the row lock
	if account.Balance < bet {
		log.Warn(LogMsgBalanceChanged, "account_id", accountID, "balance", account.Balance, "bet", bet)
		return nil, fmt.Errorf("%w: balance %d, bet %d", domain.ErrInsufficientBalance, account.Balance, bet)
	}

	timestamp := l.now().UTC()
	details := &domain.TransactionDetails{
		MachineID: machine.ID,
		BetAmount: bet,
		Result:    &result,
	}

	entries := []domain.Transaction{{
		AccountID: accountID,
		Type:      domain.TransactionSpin,
		Amount:    -bet,
		Game:      machine.Name,
		Timestamp: timestamp,
		Details:   details,
	}}
	if result.Payout > 0 {
		entries = append(entries, domain.Transaction{
			AccountID: accountID,
			Type:      domain.TransactionWin,
			Amount:    result.Payout,
			Game:      machine.Name,
			Timestamp: timestamp,
			Details:   details,
		})
	}

	for i := range entries {
		id, err := l.newID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate transaction id: %w", err)
		}
		entries[i].ID = id.String()
		if err := tx.InsertTransaction(ctx, &entries[i]); err != nil {
			return nil, fmt.Errorf("failed to insert %s transaction: %w", entries[i].Type, err)
		}
	}

	update := domain.AccountUpdate{
		Balance:       account.Balance - bet + result.Payout,
		TotalWinnings: account.TotalWinnings + result.Payout,
		TotalSpins:    account.TotalSpins + 1,
	}
	if err := tx.UpdateAccountStats(ctx, accountID, update); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	trimmed, err := tx.TrimTransactions(ctx, accountID, domain.MaxTransactionsPerAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to trim transaction log: %w", err)
	}
	if trimmed > 0 {
		log.Debug(LogMsgTrimmed, "account_id", accountID, "removed", trimmed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Debug(LogMsgSettled,
		"account_id", accountID,
		"machine_id", machine.ID,
		"bet", bet,
		"payout", result.Payout,
		"transactions", len(entries))

	return &domain.Settlement{
		Account:      account.Apply(update),
		Transactions: entries,
	}, nil
}
