// Package memory is an in-process repository used for local play and tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

// Store keeps accounts and transactions in maps. Ledger transactions are
// serialized by writer, and staged changes become visible on Commit.
type Store struct {
	mu           sync.RWMutex
	writer       sync.Mutex
	accounts     map[string]domain.Account
	emails       map[string]string // lowercased email -> account id
	usernames    map[string]string // lowercased username -> account id
	transactions map[string][]domain.Transaction // newest first
}

var (
	_ repository.Account      = (*Store)(nil)
	_ repository.Ledger       = (*Store)(nil)
	_ repository.Transactions = (*Store)(nil)
)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		accounts:     make(map[string]domain.Account),
		emails:       make(map[string]string),
		usernames:    make(map[string]string),
		transactions: make(map[string][]domain.Transaction),
	}
}

// Ping always succeeds; it lets the store back the readiness probe
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *Store) Close() {}

// CreateAccount stores a new account, enforcing unique email and username
func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(account.Email)
	username := strings.ToLower(account.Username)
	if _, taken := s.emails[email]; taken {
		return domain.ErrEmailTaken
	}
	if _, taken := s.usernames[username]; taken {
		return domain.ErrUsernameTaken
	}

	s.accounts[account.ID] = *account
	s.emails[email] = account.ID
	s.usernames[username] = account.ID
	return nil
}

// GetAccountByID returns a copy of the account
func (s *Store) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &account, nil
}

// GetAccountByEmail looks an account up by case-insensitive email
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	account := s.accounts[id]
	return &account, nil
}

// DeleteDemoAccountsBefore removes expired demo accounts and their history
func (s *Store) DeleteDemoAccountsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	// Wait for in-flight settlements so a purge never races a spin
	s.writer.Lock()
	defer s.writer.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, account := range s.accounts {
		if !account.IsDemo || !account.CreatedAt.Before(cutoff) {
			continue
		}
		delete(s.accounts, id)
		delete(s.emails, strings.ToLower(account.Email))
		delete(s.usernames, strings.ToLower(account.Username))
		delete(s.transactions, id)
		removed++
	}
	return removed, nil
}
