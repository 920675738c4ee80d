// Package exchange simulates converting ledger currency into foreign
// currencies using a fixed table of commercial rates. The rates are for
// planning only; nothing here talks to a market feed.
package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/neonfinance/neon/internal/money"
)

// Rate is the price of one unit of a foreign currency in ledger currency.
type Rate struct {
	Code    string
	Name    string
	Symbol  string
	PerUnit decimal.Decimal
}

// Quote is the simulated result of converting a base amount.
type Quote struct {
	Rate
	Converted decimal.Decimal
}

var rates = []Rate{
	{Code: "USD", Name: "US Dollar", Symbol: "$", PerUnit: decimal.RequireFromString("4.95")},
	{Code: "EUR", Name: "Euro", Symbol: "€", PerUnit: decimal.RequireFromString("5.38")},
	{Code: "GBP", Name: "Pound Sterling", Symbol: "£", PerUnit: decimal.RequireFromString("6.27")},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", PerUnit: decimal.RequireFromString("0.69")},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", PerUnit: decimal.RequireFromString("0.033")},
}

// Rates returns the simulated rate table in display order.
func Rates() []Rate {
	out := make([]Rate, len(rates))
	copy(out, rates)
	return out
}

// Convert returns how much of the given currency a base amount buys,
// rounded to two decimal places.
func Convert(amount money.Amount, code string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("conversion amount must not be negative")
	}
	for _, r := range rates {
		if r.Code == code {
			base := decimal.New(int64(amount), -2)
			return base.DivRound(r.PerUnit, 2), nil
		}
	}
	return decimal.Zero, fmt.Errorf("unknown currency code %q", code)
}

// Quotes converts a base amount against every known currency.
func Quotes(amount money.Amount) ([]Quote, error) {
	quotes := make([]Quote, 0, len(rates))
	for _, r := range rates {
		converted, err := Convert(amount, r.Code)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, Quote{Rate: r, Converted: converted})
	}
	return quotes, nil
}
