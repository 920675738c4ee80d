package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonfinance/neon/internal/ledger"
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

func createTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "neon.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLiteStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	require.Error(t, err)
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	t.Run("accounts seed", func(t *testing.T) {
		accounts, err := store.Accounts(ctx)
		require.NoError(t, err)
		require.Len(t, accounts, 4)
		assert.Equal(t, "acc_1", accounts[0].ID)
		assert.Equal(t, money.MustParse("5200.00"), accounts[0].Balance)
	})

	t.Run("categories seed", func(t *testing.T) {
		categories, err := store.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 9)
		assert.Equal(t, model.IncomeCategoryID, categories[8].ID)
		assert.True(t, categories[8].IsIncome())
	})

	t.Run("goals seed", func(t *testing.T) {
		goals, err := store.Goals(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, "Japan Trip", goals[0].Name)
	})

	t.Run("transactions and budgets start empty", func(t *testing.T) {
		transactions, err := store.Transactions(ctx)
		require.NoError(t, err)
		assert.Empty(t, transactions)

		budgets, err := store.Budgets(ctx)
		require.NoError(t, err)
		assert.Empty(t, budgets)
	})
}

func TestSaveReplacesCollection(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	first := []model.Account{
		{ID: "acc_x", Name: "Only", Type: model.AccountTypeChecking, Balance: money.MustParse("10")},
	}
	require.NoError(t, store.SaveAccounts(ctx, first))

	loaded, err := store.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "acc_x", loaded[0].ID)

	// A second save is a full overwrite, not a merge.
	second := []model.Account{
		{ID: "acc_y", Name: "Other", Type: model.AccountTypeWallet, Balance: money.MustParse("20")},
	}
	require.NoError(t, store.SaveAccounts(ctx, second))

	loaded, err = store.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "acc_y", loaded[0].ID)
}

func TestSaveEmptyCollectionSticks(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	// An explicitly saved empty account list must not fall back to seeds.
	require.NoError(t, store.SaveAccounts(ctx, nil))

	accounts, err := store.Accounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	log := []model.Transaction{
		{
			ID:          "tx_2",
			Description: "Transfer to savings",
			Amount:      money.MustParse("300"),
			Date:        model.NewDate(2026, time.August, 15),
			Type:        model.TransactionTransfer,
			AccountID:   "acc_1",
			ToAccountID: "acc_2",
		},
		{
			ID:          "tx_1",
			Description: "Groceries",
			Amount:      money.MustParse("450.75"),
			Date:        model.NewDate(2026, time.August, 12),
			Type:        model.TransactionExpense,
			CategoryID:  "cat_food",
			AccountID:   "acc_1",
		},
	}
	require.NoError(t, store.SaveTransactions(ctx, log))

	loaded, err := store.Transactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, log, loaded)
}

func TestStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	state, err := LoadState(ctx, store)
	require.NoError(t, err)
	require.Len(t, state.Accounts, 4)

	state, err = ledger.Record(state, model.Transaction{
		Description: "Groceries",
		Amount:      money.MustParse("450.75"),
		Date:        model.NewDate(2026, time.August, 12),
		Type:        model.TransactionExpense,
		CategoryID:  "cat_food",
		AccountID:   "acc_1",
	})
	require.NoError(t, err)

	state, err = ledger.SetBudgetLimit(state, "cat_food", money.MustParse("600"))
	require.NoError(t, err)

	require.NoError(t, SaveState(ctx, store, state))

	reloaded, err := LoadState(ctx, store)
	require.NoError(t, err)

	require.Len(t, reloaded.Transactions, 1)
	assert.Equal(t, "Groceries", reloaded.Transactions[0].Description)
	assert.Equal(t, money.MustParse("4749.25"), reloaded.Accounts["acc_1"].Balance)
	require.Len(t, reloaded.Budgets, 1)
	assert.Equal(t, money.MustParse("600"), reloaded.Budgets["cat_food"].Limit)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := createTestStore(t)

	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))
}
