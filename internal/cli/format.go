// Package cli implements the debtcalc command line: it loads a TOML debt
// portfolio and renders calculator results as terminal tables.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount as dollars with comma separators.
// e.g., 1234567.8 -> "$1,234,567.80"
func FormatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + cents
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatRate formats an annual percentage rate, e.g. 18.99 -> "18.99%"
func FormatRate(d decimal.Decimal) string {
	return d.String() + "%"
}

// FormatPercent formats a percentage with two places, e.g. 22.5 -> "22.50%"
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// FormatMonths formats a month count as years and months.
// e.g., 31 -> "2y 7m", 12 -> "1y", 7 -> "7m"
func FormatMonths(months int) string {
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rest)
	}
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
