package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ReelCasino_Go/internal/account"
	"github.com/osse101/ReelCasino_Go/internal/auth"
	"github.com/osse101/ReelCasino_Go/internal/concurrency"
	"github.com/osse101/ReelCasino_Go/internal/config"
	"github.com/osse101/ReelCasino_Go/internal/handler"
	"github.com/osse101/ReelCasino_Go/internal/ledger"
	"github.com/osse101/ReelCasino_Go/internal/scheduler"
	"github.com/osse101/ReelCasino_Go/internal/server"
	"github.com/osse101/ReelCasino_Go/internal/slots"
	"github.com/osse101/ReelCasino_Go/internal/stats"
	"github.com/osse101/ReelCasino_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	workerCount     = 2
	workerQueueSize = 16
)

// @title Reel Casino API
// @version 1.0
// @description Slot machine casino: accounts, spins, history and leaderboards.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	catalog, err := slots.LoadCatalog(cfg.MachinesFile)
	if err != nil {
		return err
	}
	slog.Info("Machine catalog loaded", "machines", len(catalog.Machines()))

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.pool.Close()

	limiter, closeLimiter, err := newRateLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLimiter()

	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	handler.InitValidator()

	accountService := account.NewService(store.accounts, account.Options{DemoTTL: cfg.DemoTTL})
	slotsService := slots.NewService(
		catalog,
		slots.NewGenerator(catalog.Weights(), slots.NewSecureSource()),
		ledger.New(store.ledger),
		accountService,
		limiter,
		concurrency.NewLockManager(),
	)
	statsService := stats.NewService(store.transactions, accountService)

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.ScheduleNow(cfg.DemoPurgeInterval, worker.NewDemoPurgeJob(accountService))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Services{
		DBPool:   store.pool,
		Tokens:   tokens,
		Accounts: accountService,
		Slots:    slotsService,
		Stats:    statsService,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			sched.Stop()
			pool.Stop()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	sched.Stop()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	if err := pool.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Worker pool did not drain", "error", err)
	}

	slog.Info("Server stopped")
	return nil
}
