// Package money provides a fixed-point currency amount stored as integer
// cents, so that ledger sums never accumulate floating-point drift.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount indicates a value that cannot be represented as currency.
var ErrInvalidAmount = errors.New("invalid money amount")

// Amount is a currency value in cents. The zero value is zero currency.
type Amount int64

// maxFloat is the largest float input we accept before int64 cents overflow
// becomes a concern.
const maxFloat = 9e16

// FromFloat converts a decimal currency value (e.g. 450.75) to an Amount,
// rounding to the nearest cent.
func FromFloat(v float64) (Amount, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	if v > maxFloat || v < -maxFloat {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidAmount)
	}
	return Amount(math.Round(v * 100)), nil
}

// Parse converts a decimal string such as "450.75" or "-3" to an Amount.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromFloat(v)
}

// MustParse is Parse for trusted literals; it panics on malformed input.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Float64 returns the amount as a decimal currency value.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a < 0
}

// String formats the amount as a plain decimal string, e.g. "-12.05".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON encodes the amount as a JSON decimal number, matching the
// stored collection format.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts any JSON number, including fractional values.
func (a *Amount) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
