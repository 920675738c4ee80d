package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

func TestBudgetUtilization(t *testing.T) {
	t.Run("under budget", func(t *testing.T) {
		u := BudgetUtilization(money.MustParse("600"), money.MustParse("450"))
		assert.InDelta(t, 75.0, u.Percentage, 0.0001)
		assert.False(t, u.IsOverBudget)
		assert.InDelta(t, 75.0, u.Clamped(), 0.0001)
	})

	t.Run("over budget keeps raw percentage", func(t *testing.T) {
		u := BudgetUtilization(money.MustParse("600"), money.MustParse("650"))
		assert.InDelta(t, 108.333, u.Percentage, 0.001)
		assert.True(t, u.IsOverBudget)
		assert.InDelta(t, 100.0, u.Clamped(), 0.0001)
	})

	t.Run("zero limit", func(t *testing.T) {
		u := BudgetUtilization(0, money.MustParse("650"))
		assert.Zero(t, u.Percentage)
		assert.False(t, u.IsOverBudget)
	})

	t.Run("spend equal to limit is not over", func(t *testing.T) {
		u := BudgetUtilization(money.MustParse("600"), money.MustParse("600"))
		assert.InDelta(t, 100.0, u.Percentage, 0.0001)
		assert.False(t, u.IsOverBudget)
	})
}

func TestBudgetVersusActual(t *testing.T) {
	categories := []model.Category{
		{ID: "cat_food", Name: "Food"},
		{ID: "cat_leisure", Name: "Leisure"},
	}
	budgets := []model.Budget{
		{ID: "b1", CategoryID: "cat_food", Limit: money.MustParse("600"), Period: model.BudgetMonthly},
		{ID: "b2", CategoryID: "cat_gone", Limit: money.MustParse("100"), Period: model.BudgetMonthly},
	}
	transactions := []model.Transaction{
		tx(model.TransactionExpense, "450", "2026-08-12", "acc_1", "cat_food"),
		tx(model.TransactionExpense, "25", "2026-07-02", "acc_1", "cat_food"),
		tx(model.TransactionIncome, "3000", "2026-08-01", "acc_1", "cat_salary"),
	}

	lines := BudgetVersusActual(transactions, categories, budgets)
	assert.Len(t, lines, 2)

	assert.Equal(t, "Food", lines[0].CategoryName)
	assert.Equal(t, money.MustParse("475"), lines[0].Actual)
	assert.Equal(t, money.MustParse("600"), lines[0].Limit)

	// Budgets for removed categories still report, with a placeholder name.
	assert.Equal(t, "Unknown", lines[1].CategoryName)
	assert.Equal(t, money.Amount(0), lines[1].Actual)
}
