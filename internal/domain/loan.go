package domain

import (
	"github.com/shopspring/decimal"
)

// MaxTermMonths caps every simulation at 50 years
const MaxTermMonths = 600

// PayoffStrategy represents the ordering used to pay off a set of debts
type PayoffStrategy string

const (
	PayoffStrategySnowball    PayoffStrategy = "SNOWBALL"     // smallest balance first
	PayoffStrategyAvalanche   PayoffStrategy = "AVALANCHE"    // highest rate first
	PayoffStrategyHighestRate PayoffStrategy = "HIGHEST_RATE" // same ordering as AVALANCHE
	PayoffStrategyCustom      PayoffStrategy = "CUSTOM"       // caller-supplied order
)

// Valid reports whether s is a known payoff strategy
func (s PayoffStrategy) Valid() bool {
	switch s {
	case PayoffStrategySnowball, PayoffStrategyAvalanche, PayoffStrategyHighestRate, PayoffStrategyCustom:
		return true
	}
	return false
}

// LoanDetails summarizes a single-loan amortization.
// Produced fresh by each calculation.
type LoanDetails struct {
	Balance           decimal.Decimal
	InterestRate      decimal.Decimal
	MonthlyPayment    decimal.Decimal
	TermMonths        int
	TotalInterestPaid decimal.Decimal
	TotalPaid         decimal.Decimal
}

// MonthlyPayment is one simulated month. RemainingBalance is never negative.
type MonthlyPayment struct {
	Month            int // 1-based
	TotalPayment     decimal.Decimal
	PrincipalPaid    decimal.Decimal
	InterestPaid     decimal.Decimal
	RemainingBalance decimal.Decimal
}

// DebtTypeBreakdown aggregates the active debts of a single type
type DebtTypeBreakdown struct {
	Type                DebtType
	Count               int
	TotalBalance        decimal.Decimal
	TotalMinimumPayment decimal.Decimal
}
