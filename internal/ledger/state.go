// Package ledger applies transactions to the account set. All operations
// take a state snapshot and return a new one; the input is never mutated, so
// a failed operation leaves no partial application behind.
package ledger

import (
	"maps"
	"sort"

	"github.com/neonfinance/neon/internal/model"
)

// State is a full snapshot of the ledger: the transaction log (newest
// first), the account set, and the supporting collections. Accounts and
// budgets are keyed by identifier; the budget map structurally enforces at
// most one budget per category.
type State struct {
	Transactions []model.Transaction
	Accounts     map[string]model.Account
	Budgets      map[string]model.Budget
	Categories   []model.Category
	Goals        []model.Goal
}

// NewState assembles a snapshot from stored collections.
func NewState(
	transactions []model.Transaction,
	accounts []model.Account,
	categories []model.Category,
	goals []model.Goal,
	budgets []model.Budget,
) State {
	accountsByID := make(map[string]model.Account, len(accounts))
	for _, acc := range accounts {
		accountsByID[acc.ID] = acc
	}

	budgetsByCategory := make(map[string]model.Budget, len(budgets))
	for _, b := range budgets {
		budgetsByCategory[b.CategoryID] = b
	}

	return State{
		Transactions: transactions,
		Accounts:     accountsByID,
		Budgets:      budgetsByCategory,
		Categories:   categories,
		Goals:        goals,
	}
}

// AccountList returns the accounts ordered by id for stable display and
// persistence.
func (s State) AccountList() []model.Account {
	list := make([]model.Account, 0, len(s.Accounts))
	for _, acc := range s.Accounts {
		list = append(list, acc)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// BudgetList returns the budgets ordered by category id.
func (s State) BudgetList() []model.Budget {
	list := make([]model.Budget, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		list = append(list, b)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CategoryID < list[j].CategoryID })
	return list
}

// CategoryByID looks up a category, reporting whether it exists.
func (s State) CategoryByID(id string) (model.Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// clone duplicates the mutable parts of the snapshot so an operation can
// build its successor without touching the input.
func (s State) clone() State {
	return State{
		Transactions: s.Transactions,
		Accounts:     maps.Clone(s.Accounts),
		Budgets:      maps.Clone(s.Budgets),
		Categories:   s.Categories,
		Goals:        s.Goals,
	}
}
