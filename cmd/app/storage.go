package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ReelCasino_Go/internal/config"
	"github.com/osse101/ReelCasino_Go/internal/database"
	"github.com/osse101/ReelCasino_Go/internal/database/memory"
	"github.com/osse101/ReelCasino_Go/internal/database/postgres"
	"github.com/osse101/ReelCasino_Go/internal/ratelimit"
	"github.com/osse101/ReelCasino_Go/internal/repository"
	"github.com/osse101/ReelCasino_Go/internal/slots"
)

// storage bundles the repositories behind the configured backend
type storage struct {
	pool         database.Pool
	accounts     repository.Account
	transactions repository.Transactions
	ledger       repository.Ledger
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if !cfg.UsesPostgres() {
		slog.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &storage{pool: store, accounts: store, transactions: store, ledger: store}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: cfg.DBMaxConnIdleTime,
		MaxLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &storage{
		pool:         pool,
		accounts:     postgres.NewAccountRepository(pool),
		transactions: postgres.NewTransactionRepository(pool),
		ledger:       postgres.NewLedgerRepository(pool),
	}, nil
}

// newRateLimiter returns a Redis-backed spin limiter, or a no-op one when Redis is not configured
func newRateLimiter(ctx context.Context, cfg *config.Config) (slots.RateLimiter, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Info("REDIS_ADDR not set, spin rate limiting disabled")
		return ratelimit.Noop{}, func() {}, nil
	}

	client, err := ratelimit.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	return ratelimit.NewRedisLimiter(client, cfg.SpinRateLimit, cfg.SpinRateWindow), closeFn, nil
}
