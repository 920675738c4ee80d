package model

import (
	"errors"
	"fmt"

	"github.com/neonfinance/neon/internal/money"
)

// TransactionType determines the sign a transaction applies to balances.
// Amounts are stored non-negative; the type carries the direction.
type TransactionType string

const (
	// TransactionExpense debits the source account.
	TransactionExpense TransactionType = "expense"
	// TransactionIncome credits the source account.
	TransactionIncome TransactionType = "income"
	// TransactionInvestment credits the source account.
	TransactionInvestment TransactionType = "investment"
	// TransactionTransfer debits the source and credits the destination.
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single immutable ledger entry. The log is ordered newest
// first.
type Transaction struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        money.Amount    `json:"amount"`
	Date          Date            `json:"date"`
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryId,omitempty"`
	SubCategoryID string          `json:"subCategoryId,omitempty"`
	AccountID     string          `json:"accountId"`
	ToAccountID   string          `json:"toAccountId,omitempty"`
}

// Validation failures for candidate transactions.
var (
	ErrNegativeAmount     = errors.New("transaction amount must not be negative")
	ErrMissingAccount     = errors.New("transaction requires a source account")
	ErrMissingDestination = errors.New("transfer requires a destination account")
	ErrTransferToSelf     = errors.New("transfer source and destination must differ")
	ErrUnknownType        = errors.New("unknown transaction type")
)

// Validate checks the shape of a candidate transaction before it is applied
// to the ledger. It never mutates anything.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.AccountID == "" {
		return ErrMissingAccount
	}
	switch t.Type {
	case TransactionExpense, TransactionIncome, TransactionInvestment:
	case TransactionTransfer:
		if t.ToAccountID == "" {
			return ErrMissingDestination
		}
		if t.ToAccountID == t.AccountID {
			return ErrTransferToSelf
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, t.Type)
	}
	return nil
}
