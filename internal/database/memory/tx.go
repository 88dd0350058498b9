package memory

import (
	"context"
	"errors"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// ledgerTx stages writes until Commit. The store writer lock is held from
// BeginLedgerTx until Commit or Rollback.
type ledgerTx struct {
	store   *Store
	closed  bool
	updates map[string]domain.AccountUpdate
	inserts []domain.Transaction
	keep    map[string]int
}

// BeginLedgerTx starts a settlement transaction
func (s *Store) BeginLedgerTx(ctx context.Context) (repository.LedgerTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writer.Lock()
	return &ledgerTx{
		store:   s,
		updates: make(map[string]domain.AccountUpdate),
		keep:    make(map[string]int),
	}, nil
}

func (t *ledgerTx) GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	if t.closed {
		return nil, errTxClosed
	}
	account, err := t.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if update, ok := t.updates[accountID]; ok {
		applied := account.Apply(update)
		return &applied, nil
	}
	return account, nil
}

func (t *ledgerTx) InsertTransaction(ctx context.Context, txn *domain.Transaction) error {
	if t.closed {
		return errTxClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.inserts = append(t.inserts, *txn)
	return nil
}

func (t *ledgerTx) UpdateAccountStats(ctx context.Context, accountID string, update domain.AccountUpdate) error {
	if t.closed {
		return errTxClosed
	}
	if _, err := t.store.GetAccountByID(ctx, accountID); err != nil {
		return err
	}
	t.updates[accountID] = update
	return nil
}

func (t *ledgerTx) TrimTransactions(ctx context.Context, accountID string, keep int) (int64, error) {
	if t.closed {
		return 0, errTxClosed
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	t.store.mu.RLock()
	total := len(t.store.transactions[accountID])
	t.store.mu.RUnlock()
	for _, txn := range t.inserts {
		if txn.AccountID == accountID {
			total++
		}
	}

	t.keep[accountID] = keep
	if total <= keep {
		return 0, nil
	}
	return int64(total - keep), nil
}

func (t *ledgerTx) Commit(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := t.store
	s.mu.Lock()
	for _, txn := range t.inserts {
		s.transactions[txn.AccountID] = append([]domain.Transaction{txn}, s.transactions[txn.AccountID]...)
	}
	for accountID, update := range t.updates {
		if account, ok := s.accounts[accountID]; ok {
			s.accounts[accountID] = account.Apply(update)
		}
	}
	for accountID, keep := range t.keep {
		if log := s.transactions[accountID]; len(log) > keep {
			s.transactions[accountID] = log[:keep:keep]
		}
	}
	s.mu.Unlock()

	t.close()
	return nil
}

func (t *ledgerTx) Rollback(ctx context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.close()
	return nil
}

func (t *ledgerTx) close() {
	t.closed = true
	t.inserts = nil
	t.store.writer.Unlock()
}
