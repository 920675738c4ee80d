package ledger

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/neonfinance/neon/internal/common"
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

// Record validates a candidate transaction and applies it to the snapshot,
// returning the successor state. On any error the input state is returned
// unchanged: the log and every balance either all move or none do.
//
// Balance rules: expenses and transfers debit the source account; income and
// investments credit it; a transfer additionally credits the destination.
// Overdraft is permitted, so no balance floor is enforced.
func Record(state State, tx model.Transaction) (State, error) {
	if err := tx.Validate(); err != nil {
		return state, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	source, ok := state.Accounts[tx.AccountID]
	if !ok {
		return state, fmt.Errorf("%w: %w %q", common.ErrValidation, common.ErrUnknownAccount, tx.AccountID)
	}

	var destination model.Account
	if tx.Type == model.TransactionTransfer {
		destination, ok = state.Accounts[tx.ToAccountID]
		if !ok {
			return state, fmt.Errorf("%w: %w %q", common.ErrValidation, common.ErrUnknownAccount, tx.ToAccountID)
		}
	}

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	next := state.clone()
	next.Transactions = append([]model.Transaction{tx}, state.Transactions...)

	switch tx.Type {
	case model.TransactionExpense, model.TransactionTransfer:
		source.Balance -= tx.Amount
	case model.TransactionIncome, model.TransactionInvestment:
		source.Balance += tx.Amount
	}
	next.Accounts[source.ID] = source

	if tx.Type == model.TransactionTransfer {
		destination.Balance += tx.Amount
		next.Accounts[destination.ID] = destination
	}

	slog.Debug("recorded transaction",
		"id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount.String(),
		"account", tx.AccountID)

	return next, nil
}

// SetBudgetLimit upserts the budget for a category. An existing budget keeps
// its id and period and gets the new limit; a fresh one defaults to a
// monthly period. Negative limits and the reserved income category are
// rejected before anything changes.
func SetBudgetLimit(state State, categoryID string, limit money.Amount) (State, error) {
	if categoryID == "" {
		return state, fmt.Errorf("%w: budget requires a category", common.ErrValidation)
	}
	if categoryID == model.IncomeCategoryID {
		return state, fmt.Errorf("%w: the income category cannot be budgeted", common.ErrValidation)
	}
	if limit.IsNegative() {
		return state, fmt.Errorf("%w: budget limit must not be negative", common.ErrValidation)
	}

	next := state.clone()

	budget, ok := next.Budgets[categoryID]
	if ok {
		budget.Limit = limit
	} else {
		budget = model.Budget{
			ID:         uuid.NewString(),
			CategoryID: categoryID,
			Limit:      limit,
			Period:     model.BudgetMonthly,
		}
	}
	next.Budgets[categoryID] = budget

	slog.Debug("set budget limit", "category", categoryID, "limit", limit.String())
	return next, nil
}
