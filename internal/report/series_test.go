package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

func TestCashFlowSeries(t *testing.T) {
	transactions := []model.Transaction{
		// Log order is newest first; the series must come back ascending.
		tx(model.TransactionExpense, "30", "2026-08-03", "acc_1", "cat_food"),
		tx(model.TransactionIncome, "3000", "2026-08-02", "acc_1", "cat_salary"),
		tx(model.TransactionExpense, "20", "2026-08-02", "acc_1", "cat_food"),
		tx(model.TransactionExpense, "10", "2026-08-01", "acc_1", "cat_food"),
		// Excluded types.
		tx(model.TransactionInvestment, "500", "2026-08-02", "acc_1", ""),
		tx(model.TransactionTransfer, "100", "2026-08-02", "acc_1", ""),
	}

	series := CashFlowSeries(transactions)
	require.Len(t, series, 3)

	assert.Equal(t, "2026-08-01", series[0].Date)
	assert.Equal(t, money.MustParse("10"), series[0].Expense)
	assert.Equal(t, money.Amount(0), series[0].Income)

	assert.Equal(t, "2026-08-02", series[1].Date)
	assert.Equal(t, money.MustParse("3000"), series[1].Income)
	assert.Equal(t, money.MustParse("20"), series[1].Expense)

	assert.Equal(t, "2026-08-03", series[2].Date)
	assert.Equal(t, money.MustParse("30"), series[2].Expense)
}

func TestCashFlowSeriesEmpty(t *testing.T) {
	assert.Empty(t, CashFlowSeries(nil))
}

func TestCategoryDistribution(t *testing.T) {
	categories := []model.Category{
		{ID: "cat_food", Name: "Food", Color: "#ef4444"},
		{ID: "cat_leisure", Name: "Leisure", Color: "#e879f9"},
		{ID: "cat_housing", Name: "Housing", Color: "#a78bfa"},
	}
	transactions := []model.Transaction{
		tx(model.TransactionExpense, "450", "2026-08-12", "acc_1", "cat_food"),
		tx(model.TransactionExpense, "50", "2026-08-13", "acc_1", "cat_food"),
		tx(model.TransactionExpense, "80", "2026-08-14", "acc_1", "cat_leisure"),
		// Income never contributes to the distribution.
		tx(model.TransactionIncome, "3000", "2026-08-01", "acc_1", "cat_housing"),
	}

	dist := CategoryDistribution(transactions, categories)
	require.Len(t, dist, 2)

	assert.Equal(t, "Food", dist[0].Name)
	assert.Equal(t, money.MustParse("500"), dist[0].Total)
	assert.Equal(t, "#ef4444", dist[0].Color)

	assert.Equal(t, "Leisure", dist[1].Name)
	assert.Equal(t, money.MustParse("80"), dist[1].Total)

	// Housing had no expense spend, so it is absent rather than zero.
	for _, entry := range dist {
		assert.NotEqual(t, "cat_housing", entry.CategoryID)
	}
}

func TestGoalProgress(t *testing.T) {
	goal := model.Goal{
		ID:            "goal_1",
		TargetAmount:  money.MustParse("20000"),
		CurrentAmount: money.MustParse("5500"),
	}
	assert.InDelta(t, 27.5, GoalProgress(goal), 0.0001)

	overfunded := model.Goal{
		TargetAmount:  money.MustParse("100"),
		CurrentAmount: money.MustParse("150"),
	}
	assert.InDelta(t, 150.0, GoalProgress(overfunded), 0.0001,
		"raw progress stays unclamped for numeric display")

	assert.Zero(t, GoalProgress(model.Goal{CurrentAmount: money.MustParse("10")}))
}
