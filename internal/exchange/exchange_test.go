package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonfinance/neon/internal/money"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "dollars", amount: "1000", code: "USD", want: "202.02"},
		{name: "euros", amount: "1000", code: "EUR", want: "185.87"},
		{name: "yen uses sub-unit rate", amount: "100", code: "JPY", want: "3030.3"},
		{name: "zero amount", amount: "0", code: "USD", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(money.MustParse(tt.amount), tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestConvertUnknownCode(t *testing.T) {
	_, err := Convert(money.MustParse("100"), "XYZ")
	require.Error(t, err)
}

func TestConvertRejectsNegative(t *testing.T) {
	_, err := Convert(money.Amount(-1), "USD")
	require.Error(t, err)
}

func TestQuotesCoverEveryRate(t *testing.T) {
	quotes, err := Quotes(money.MustParse("500"))
	require.NoError(t, err)
	require.Len(t, quotes, 5)
	assert.Equal(t, "USD", quotes[0].Code)
	assert.Equal(t, "101.01", quotes[0].Converted.String())
}
