package storage

import (
	"context"
	"fmt"

	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/service"
)

// LoadState assembles a full ledger snapshot from the stored collections,
// falling back to seed data for collections that were never saved.
func LoadState(ctx context.Context, store service.Store) (ledger.State, error) {
	transactions, err := store.Transactions(ctx)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to load transactions: %w", err)
	}
	accounts, err := store.Accounts(ctx)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to load accounts: %w", err)
	}
	categories, err := store.Categories(ctx)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to load categories: %w", err)
	}
	goals, err := store.Goals(ctx)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to load goals: %w", err)
	}
	budgets, err := store.Budgets(ctx)
	if err != nil {
		return ledger.State{}, fmt.Errorf("failed to load budgets: %w", err)
	}

	return ledger.NewState(transactions, accounts, categories, goals, budgets), nil
}

// SaveState persists every collection of a snapshot. Aggregate views are
// derived, never stored.
func SaveState(ctx context.Context, store service.Store, state ledger.State) error {
	if err := store.SaveTransactions(ctx, state.Transactions); err != nil {
		return err
	}
	if err := store.SaveAccounts(ctx, state.AccountList()); err != nil {
		return err
	}
	if err := store.SaveCategories(ctx, state.Categories); err != nil {
		return err
	}
	if err := store.SaveGoals(ctx, state.Goals); err != nil {
		return err
	}
	return store.SaveBudgets(ctx, state.BudgetList())
}
