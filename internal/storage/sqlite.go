// Package storage implements the persistence gateway on SQLite. Every
// entity collection is stored as a single JSON document in a key-value
// table; saving a collection replaces the previous document wholesale.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/neonfinance/neon/internal/common"
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/service"
)

// Collection keys in the collections table.
const (
	collectionTransactions = "transactions"
	collectionAccounts     = "accounts"
	collectionCategories   = "categories"
	collectionGoals        = "goals"
	collectionBudgets      = "budgets"
)

// SQLiteStore implements service.Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

var _ service.Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// getCollection reads one collection document into dest. It reports whether
// a document existed, so callers can fall back to seed data.
func (s *SQLiteStore) getCollection(ctx context.Context, name string, dest any) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM collections WHERE name = ?`, name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read collection %q: %w", name, err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("%w: collection %q: %v", common.ErrCorrupted, name, err)
	}
	return true, nil
}

// saveCollection replaces one collection document.
func (s *SQLiteStore) saveCollection(ctx context.Context, name string, value any) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", name, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		name, string(data))
	if err != nil {
		return fmt.Errorf("failed to save collection %q: %w", name, err)
	}
	return nil
}

// Transactions returns the stored transaction log, newest first. The log
// defaults to empty.
func (s *SQLiteStore) Transactions(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if _, err := s.getCollection(ctx, collectionTransactions, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// SaveTransactions replaces the stored transaction log.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	return s.saveCollection(ctx, collectionTransactions, emptyNotNull(transactions))
}

// Accounts returns the stored accounts, or the seed set when none exist.
func (s *SQLiteStore) Accounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	found, err := s.getCollection(ctx, collectionAccounts, &accounts)
	if err != nil {
		return nil, err
	}
	if !found {
		return SeedAccounts(), nil
	}
	return accounts, nil
}

// SaveAccounts replaces the stored accounts.
func (s *SQLiteStore) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	return s.saveCollection(ctx, collectionAccounts, emptyNotNull(accounts))
}

// Categories returns the stored categories, or the seed set when none exist.
func (s *SQLiteStore) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	found, err := s.getCollection(ctx, collectionCategories, &categories)
	if err != nil {
		return nil, err
	}
	if !found {
		return SeedCategories(), nil
	}
	return categories, nil
}

// SaveCategories replaces the stored categories.
func (s *SQLiteStore) SaveCategories(ctx context.Context, categories []model.Category) error {
	return s.saveCollection(ctx, collectionCategories, emptyNotNull(categories))
}

// Goals returns the stored goals, or the seed set when none exist.
func (s *SQLiteStore) Goals(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	found, err := s.getCollection(ctx, collectionGoals, &goals)
	if err != nil {
		return nil, err
	}
	if !found {
		return SeedGoals(), nil
	}
	return goals, nil
}

// SaveGoals replaces the stored goals.
func (s *SQLiteStore) SaveGoals(ctx context.Context, goals []model.Goal) error {
	return s.saveCollection(ctx, collectionGoals, emptyNotNull(goals))
}

// Budgets returns the stored budgets. Budgets default to empty.
func (s *SQLiteStore) Budgets(ctx context.Context) ([]model.Budget, error) {
	var budgets []model.Budget
	if _, err := s.getCollection(ctx, collectionBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

// SaveBudgets replaces the stored budgets.
func (s *SQLiteStore) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	return s.saveCollection(ctx, collectionBudgets, emptyNotNull(budgets))
}

// emptyNotNull keeps stored documents as [] rather than null for nil slices.
func emptyNotNull[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
