// Package report derives read-only views from the ledger: totals,
// per-category spend, budget utilization, and time series. Every function is
// pure; the reference month is always passed in explicitly and buckets are
// calendar months, not rolling windows.
package report

import (
	"time"

	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

// TotalBalance sums the balances of all accounts.
func TotalBalance(accounts []model.Account) money.Amount {
	var total money.Amount
	for _, acc := range accounts {
		total += acc.Balance
	}
	return total
}

// PeriodTotals sums transaction amounts of one type within a calendar month.
func PeriodTotals(transactions []model.Transaction, typ model.TransactionType, month time.Month, year int) money.Amount {
	var total money.Amount
	for _, tx := range transactions {
		if tx.Type == typ && tx.Date.In(month, year) {
			total += tx.Amount
		}
	}
	return total
}

// AccountFlow is one account's monthly inflow and outflow.
type AccountFlow struct {
	In  money.Amount
	Out money.Amount
}

// AccountMonthlyFlow computes an account's cash movement for a calendar
// month. A transfer counts as outflow on its source account and inflow on
// its destination, so the same transaction can appear on both sides.
func AccountMonthlyFlow(transactions []model.Transaction, accountID string, month time.Month, year int) AccountFlow {
	var flow AccountFlow
	for _, tx := range transactions {
		if !tx.Date.In(month, year) {
			continue
		}
		if tx.AccountID == accountID {
			switch tx.Type {
			case model.TransactionIncome, model.TransactionInvestment:
				flow.In += tx.Amount
			case model.TransactionExpense, model.TransactionTransfer:
				flow.Out += tx.Amount
			}
		}
		if tx.Type == model.TransactionTransfer && tx.ToAccountID == accountID {
			flow.In += tx.Amount
		}
	}
	return flow
}

// CategorySpend sums expense amounts for one category within a calendar month.
func CategorySpend(transactions []model.Transaction, categoryID string, month time.Month, year int) money.Amount {
	var total money.Amount
	for _, tx := range transactions {
		if tx.Type == model.TransactionExpense && tx.CategoryID == categoryID && tx.Date.In(month, year) {
			total += tx.Amount
		}
	}
	return total
}
