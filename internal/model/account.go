package model

import "github.com/neonfinance/neon/internal/money"

// AccountType indicates what kind of bank account an Account represents.
type AccountType string

const (
	// AccountTypeChecking represents everyday checking accounts.
	AccountTypeChecking AccountType = "checking"
	// AccountTypeSavings represents savings accounts.
	AccountTypeSavings AccountType = "savings"
	// AccountTypeInvestment represents brokerage or investment accounts.
	AccountTypeInvestment AccountType = "investment"
	// AccountTypeWallet represents physical cash wallets.
	AccountTypeWallet AccountType = "wallet"
)

// Account is a bank account whose balance is derived from the transaction
// log. Balances are only ever changed by the ledger engine; overdraft is
// allowed, so balances may go negative.
type Account struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	BankName  string       `json:"bankName"`
	Type      AccountType  `json:"type"`
	Balance   money.Amount `json:"balance"`
	LogoColor string       `json:"logoColor"`
}
