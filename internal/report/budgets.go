package report

import (
	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

// Utilization describes spend against a budget limit. Percentage is the raw
// unclamped value so reporting can show overruns beyond 100%.
type Utilization struct {
	Percentage   float64
	IsOverBudget bool
}

// Clamped returns the percentage bounded to [0,100] for progress-bar
// rendering.
func (u Utilization) Clamped() float64 {
	if u.Percentage < 0 {
		return 0
	}
	if u.Percentage > 100 {
		return 100
	}
	return u.Percentage
}

// BudgetUtilization computes spend as a percentage of the limit. A zero
// limit yields zero percent and can never be over budget.
func BudgetUtilization(limit, spend money.Amount) Utilization {
	if limit <= 0 {
		return Utilization{}
	}
	return Utilization{
		Percentage:   float64(spend) / float64(limit) * 100,
		IsOverBudget: spend > limit,
	}
}

// BudgetLine pairs a budget limit with actual expense spend for one category.
type BudgetLine struct {
	CategoryID   string
	CategoryName string
	Limit        money.Amount
	Actual       money.Amount
}

// BudgetVersusActual builds the budget-versus-actual comparison: every
// budget paired with the all-time expense total of its category.
func BudgetVersusActual(transactions []model.Transaction, categories []model.Category, budgets []model.Budget) []BudgetLine {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	lines := make([]BudgetLine, 0, len(budgets))
	for _, b := range budgets {
		var actual money.Amount
		for _, tx := range transactions {
			if tx.Type == model.TransactionExpense && tx.CategoryID == b.CategoryID {
				actual += tx.Amount
			}
		}
		name, ok := names[b.CategoryID]
		if !ok {
			name = "Unknown"
		}
		lines = append(lines, BudgetLine{
			CategoryID:   b.CategoryID,
			CategoryName: name,
			Limit:        b.Limit,
			Actual:       actual,
		})
	}
	return lines
}
