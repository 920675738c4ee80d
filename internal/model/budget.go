package model

import "github.com/neonfinance/neon/internal/money"

// BudgetPeriod is the time bucket a budget limit applies to.
type BudgetPeriod string

const (
	// BudgetMonthly limits spending per calendar month.
	BudgetMonthly BudgetPeriod = "monthly"
	// BudgetYearly limits spending per calendar year.
	BudgetYearly BudgetPeriod = "yearly"
)

// Budget is a spending limit for one category. At most one budget exists per
// category; setting a limit again replaces the previous one.
type Budget struct {
	ID         string       `json:"id"`
	CategoryID string       `json:"categoryId"`
	Limit      money.Amount `json:"limit"`
	Period     BudgetPeriod `json:"period"`
}
