package model

import "github.com/neonfinance/neon/internal/money"

// Goal is a savings target. Goals are seeded and read-only; no ledger
// operation updates CurrentAmount.
type Goal struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	TargetAmount  money.Amount `json:"targetAmount"`
	CurrentAmount money.Amount `json:"currentAmount"`
	Deadline      Date         `json:"deadline"`
	Icon          string       `json:"icon"`
}
