package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/neonfinance/neon/internal/advisor"
	"github.com/neonfinance/neon/internal/config"
	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/service"
	"github.com/neonfinance/neon/internal/storage"
)

// initStorage opens the database with proper path expansion and runs
// migrations.
func initStorage(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/neon/neon.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadLedger opens storage and assembles the full ledger snapshot. The caller
// owns closing the returned store.
func loadLedger(ctx context.Context) (service.Store, ledger.State, error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, ledger.State{}, err
	}

	state, err := storage.LoadState(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, ledger.State{}, err
	}

	return store, state, nil
}

// newAdvisor builds the advisory gateway from configuration.
func newAdvisor() (service.Advisor, error) {
	cfg, err := config.LoadAdvisorConfig()
	if err != nil {
		return nil, err
	}
	return advisor.NewService(cfg)
}

// periodFlags resolves the --month/--year flag pair, defaulting to the
// current calendar month.
func periodFlags(month, year int) (time.Month, int, error) {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %d: must be 1-12", month)
	}
	return time.Month(month), year, nil
}
