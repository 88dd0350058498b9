// Package account manages player accounts: registration, login, demo sessions and lookups.
package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/ReelCasino_Go/internal/domain"
	"github.com/osse101/ReelCasino_Go/internal/logger"
	"github.com/osse101/ReelCasino_Go/internal/metrics"
	"github.com/osse101/ReelCasino_Go/internal/repository"
)

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context, username, email, password string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*domain.Account, error)
	StartDemo(ctx context.Context) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	// Refresh replaces the cached copy after the ledger changed the account
	Refresh(account domain.Account)
	PurgeExpiredDemos(ctx context.Context) (int64, error)
}

// Options tunes the account service
type Options struct {
	DemoTTL    time.Duration
	CacheSize  int
	CacheTTL   time.Duration
	BcryptCost int
}

type service struct {
	repo       repository.Account
	cache      *accountCache
	demoTTL    time.Duration
	bcryptCost int
	now        func() time.Time
	newID      func() (uuid.UUID, error)
}

// NewService creates a new account service. Zero options fall back to defaults.
func NewService(repo repository.Account, opts Options) Service {
	if opts.DemoTTL <= 0 {
		opts.DemoTTL = domain.DefaultDemoTTL
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &service{
		repo:       repo,
		cache:      newAccountCache(opts.CacheSize, opts.CacheTTL),
		demoTTL:    opts.DemoTTL,
		bcryptCost: opts.BcryptCost,
		now:        time.Now,
		newID:      uuid.NewV7,
	}
}

func (s *service) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := validateRegistration(username, email, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.create(ctx, domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Balance:      domain.RegisteredStartingBalance,
	})
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreated.WithLabelValues(KindRegistered).Inc()
	logger.FromContext(ctx).Info(LogMsgAccountRegistered, "account_id", account.ID, "username", account.Username)
	return account, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.repo.GetAccountByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			logger.FromContext(ctx).Debug(LogMsgLoginFailed, "reason", "unknown email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	// Demo accounts have no password and cannot log in
	if account.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Debug(LogMsgLoginFailed, "account_id", account.ID, "reason", "password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	s.cache.Set(*account)
	return account, nil
}

func (s *service) StartDemo(ctx context.Context) (*domain.Account, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account id: %w", err)
	}
	suffix := strings.ReplaceAll(id.String(), "-", "")
	suffix = suffix[len(suffix)-demoSuffixLength:]

	account, err := s.create(ctx, domain.Account{
		ID:       id.String(),
		Username: domain.DemoUsernamePrefix + "-" + suffix,
		Email:    "demo+" + suffix + "@" + domain.DemoEmailDomain,
		Balance:  domain.DemoStartingBalance,
		IsDemo:   true,
	})
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreated.WithLabelValues(KindDemo).Inc()
	logger.FromContext(ctx).Info(LogMsgDemoStarted, "account_id", account.ID, "username", account.Username)
	return account, nil
}

func (s *service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if account, ok := s.cache.Get(accountID); ok {
		return account, nil
	}

	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(*account)
	return account, nil
}

func (s *service) Refresh(account domain.Account) {
	s.cache.Set(account)
}

// PurgeExpiredDemos deletes demo accounts older than the demo TTL
func (s *service) PurgeExpiredDemos(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteDemoAccountsBefore(ctx, s.now().Add(-s.demoTTL))
	if err != nil {
		return 0, fmt.Errorf("failed to purge demo accounts: %w", err)
	}
	if removed > 0 {
		// Purged ids are not returned, so drop every cached entry
		s.cache.Clear()
		metrics.DemoAccountsPurged.Add(float64(removed))
		logger.FromContext(ctx).Info(LogMsgDemoPurged, "removed", removed)
	}
	return removed, nil
}

// create fills identity fields and stores the account
func (s *service) create(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if account.ID == "" {
		id, err := s.newID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate account id: %w", err)
		}
		account.ID = id.String()
	}
	account.CreatedAt = s.now().UTC()

	if err := s.repo.CreateAccount(ctx, &account); err != nil {
		return nil, err
	}
	s.cache.Set(account)
	return &account, nil
}

func validateRegistration(username, email, password string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	case len([]rune(username)) > domain.MaxUsernameLength:
		return fmt.Errorf("%w: username must be at most %d characters", domain.ErrInvalidInput, domain.MaxUsernameLength)
	case len(password) < domain.MinPasswordLength:
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, domain.MinPasswordLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	return nil
}
