// Package service defines the interfaces and shared types that connect the
// ledger core to its external collaborators.
package service

import (
	"context"

	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

// Store is the persistence gateway. Each collection is loaded and saved as a
// whole; a save replaces the stored contents entirely. Loads return fixed
// seed data when nothing has been stored yet.
type Store interface {
	Transactions(ctx context.Context) ([]model.Transaction, error)
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error

	Accounts(ctx context.Context) ([]model.Account, error)
	SaveAccounts(ctx context.Context, accounts []model.Account) error

	Categories(ctx context.Context) ([]model.Category, error)
	SaveCategories(ctx context.Context, categories []model.Category) error

	Goals(ctx context.Context) ([]model.Goal, error)
	SaveGoals(ctx context.Context, goals []model.Goal) error

	Budgets(ctx context.Context) ([]model.Budget, error)
	SaveBudgets(ctx context.Context, budgets []model.Budget) error

	Migrate(ctx context.Context) error
	Close() error
}

// AccountSummary is the compact account view shared with the advisor.
type AccountSummary struct {
	Name    string       `json:"name"`
	Balance money.Amount `json:"balance"`
}

// Snapshot is the ledger context handed to the advisory gateway alongside a
// user query.
type Snapshot struct {
	TotalBalance       money.Amount        `json:"totalBalance"`
	RecentTransactions []model.Transaction `json:"recentTransactions"`
	Accounts           []AccountSummary    `json:"accountsSummary"`
	CategoryNames      []string            `json:"categoryNames"`
}

// Advisor turns a natural-language query plus a ledger snapshot into
// free-text advice. Implementations must swallow provider failures and
// return a fixed fallback string instead of an error reaching the user.
type Advisor interface {
	Advise(ctx context.Context, query string, snapshot Snapshot) (string, error)
}
