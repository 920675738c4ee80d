package report

import (
	"sort"

	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

// FlowPoint is the income and expense total for a single calendar date.
type FlowPoint struct {
	Date    string
	Income  money.Amount
	Expense money.Amount
}

// CashFlowSeries groups income and expense transactions by exact date and
// returns the points in ascending date order. Investments and transfers are
// not part of this series.
func CashFlowSeries(transactions []model.Transaction) []FlowPoint {
	byDate := make(map[string]*FlowPoint)
	for _, tx := range transactions {
		if tx.Type != model.TransactionIncome && tx.Type != model.TransactionExpense {
			continue
		}
		key := tx.Date.String()
		point, ok := byDate[key]
		if !ok {
			point = &FlowPoint{Date: key}
			byDate[key] = point
		}
		switch tx.Type {
		case model.TransactionIncome:
			point.Income += tx.Amount
		case model.TransactionExpense:
			point.Expense += tx.Amount
		}
	}

	series := make([]FlowPoint, 0, len(byDate))
	for _, point := range byDate {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// CategoryTotal is the all-time expense total for one category.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Color      string
	Total      money.Amount
}

// CategoryDistribution totals expense transactions per category, preserving
// category order. Categories with no expense spend are omitted entirely
// rather than reported as zero.
func CategoryDistribution(transactions []model.Transaction, categories []model.Category) []CategoryTotal {
	totals := make(map[string]money.Amount, len(categories))
	for _, tx := range transactions {
		if tx.Type == model.TransactionExpense {
			totals[tx.CategoryID] += tx.Amount
		}
	}

	var result []CategoryTotal
	for _, cat := range categories {
		total := totals[cat.ID]
		if total == 0 {
			continue
		}
		result = append(result, CategoryTotal{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Color:      cat.Color,
			Total:      total,
		})
	}
	return result
}
