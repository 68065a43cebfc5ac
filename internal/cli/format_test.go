package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"7.5", "$7.50"},
		{"999.999", "$1,000.00"},
		{"1234567.8", "$1,234,567.80"},
		{"-2500", "-$2,500.00"},
		{"123456", "$123,456.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatRateAndPercent(t *testing.T) {
	assert.Equal(t, "18.99%", FormatRate(decimal.RequireFromString("18.99")))
	assert.Equal(t, "5%", FormatRate(decimal.RequireFromString("5.00")))
	assert.Equal(t, "22.50%", FormatPercent(decimal.RequireFromString("22.5")))
}

func TestFormatMonths(t *testing.T) {
	assert.Equal(t, "0m", FormatMonths(0))
	assert.Equal(t, "7m", FormatMonths(7))
	assert.Equal(t, "1y", FormatMonths(12))
	assert.Equal(t, "2y 7m", FormatMonths(31))
}
