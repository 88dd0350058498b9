package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// applyMigrations executes the Up section of every migration file in name order
func applyMigrations(ctx context.Context, t *testing.T, pool *pgxpool.Pool, migrationsDir string) error {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, filepath.Join(migrationsDir, entry.Name()))
		}
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		up := strings.Replace(string(content), "-- +goose Up", "", 1)
		if idx := strings.Index(up, "-- +goose Down"); idx != -1 {
			up = up[:idx]
		}

		t.Logf("Executing: %s", filepath.Base(file))
		if _, err := pool.Exec(ctx, strings.TrimSpace(up)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

// truncateAll clears every table between tests
func truncateAll(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, "TRUNCATE "+tableTransactions+", "+tableAccounts+" CASCADE"); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}
