// Package extrapayment measures how extra payments shorten a debt's payoff.
package extrapayment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/amortization"
)

// Mode distinguishes a lump sum from a standing monthly increase
type Mode string

const (
	ModeOneTime   Mode = "ONE_TIME"
	ModeRecurring Mode = "RECURRING"
)

// PercentPlaces is the precision PercentageFaster is reported at
const PercentPlaces = 2

var hundred = decimal.NewFromInt(100)

// Input describes the extra payment.
//
// NumberOfPayments only selects recurring mode: when set, ExtraPaymentAmount is
// added to every monthly payment until payoff. AsOf anchors the payoff dates.
type Input struct {
	ExtraPaymentAmount decimal.Decimal
	NumberOfPayments   *int
	AsOf               time.Time
}

// Scenario is one way of paying the debt off
type Scenario struct {
	MonthlyPayment    decimal.Decimal
	MonthsToPayoff    int
	TotalInterestPaid decimal.Decimal
	TotalPaid         decimal.Decimal
	PayoffDate        time.Time
}

// Impact compares the scenario with the extra payment against the one without
type Impact struct {
	MonthsSaved      int
	InterestSaved    decimal.Decimal
	TotalSaved       decimal.Decimal // interest only, the extra money itself is spent
	PercentageFaster decimal.Decimal
	NewPayoffDate    time.Time
}

// Result is the outcome of AnalyzeExtraPaymentImpact
type Result struct {
	DebtID              uuid.UUID
	DebtName            string
	CurrentBalance      decimal.Decimal
	InterestRate        decimal.Decimal
	Mode                Mode
	ExtraPaymentAmount  decimal.Decimal
	WithoutExtraPayment Scenario
	WithExtraPayment    Scenario
	Impact              Impact
	Recommendation      string
}

// AnalyzeExtraPaymentImpact compares paying the debt at its minimum with paying
// it with an extra payment.
//
// One-time mode applies the amount to principal immediately (never below zero) and
// keeps the minimum payment. Recurring mode adds the amount to every payment.
func AnalyzeExtraPaymentImpact(debt domain.Debt, input Input) (*Result, error) {
	if err := debt.ValidateForCalculation(); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount("extra_payment_amount", input.ExtraPaymentAmount); err != nil {
		return nil, err
	}
	if input.NumberOfPayments != nil && *input.NumberOfPayments < 1 {
		return nil, domain.NewValidationError("number_of_payments", "must be at least 1")
	}

	without, err := amortization.CalculateLoanDetails(debt.CurrentBalance, debt.InterestRate, debt.MinimumPayment, 0)
	if err != nil {
		return nil, err
	}

	mode := ModeOneTime
	if input.NumberOfPayments != nil {
		mode = ModeRecurring
	}

	var with Scenario
	switch mode {
	case ModeRecurring:
		payment := debt.MinimumPayment.Add(input.ExtraPaymentAmount)
		details, err := amortization.CalculateLoanDetails(debt.CurrentBalance, debt.InterestRate, payment, 0)
		if err != nil {
			return nil, err
		}
		with = scenario(details, payment, decimal.Zero, input.AsOf)
	default:
		applied := decimal.Min(input.ExtraPaymentAmount, debt.CurrentBalance)
		details, err := amortization.CalculateLoanDetails(debt.CurrentBalance.Sub(applied), debt.InterestRate, debt.MinimumPayment, 0)
		if err != nil {
			return nil, err
		}
		with = scenario(details, debt.MinimumPayment, applied, input.AsOf)
	}

	interestSaved := without.TotalInterestPaid.Sub(with.TotalInterestPaid)
	impact := Impact{
		MonthsSaved:      without.TermMonths - with.MonthsToPayoff,
		InterestSaved:    interestSaved,
		TotalSaved:       interestSaved,
		PercentageFaster: decimal.Zero,
		NewPayoffDate:    with.PayoffDate,
	}
	if without.TermMonths > 0 {
		impact.PercentageFaster = decimal.NewFromInt(int64(impact.MonthsSaved)).
			Div(decimal.NewFromInt(int64(without.TermMonths))).
			Mul(hundred).
			Round(PercentPlaces)
	}

	result := &Result{
		DebtID:              debt.ID,
		DebtName:            debt.Name,
		CurrentBalance:      debt.CurrentBalance,
		InterestRate:        debt.InterestRate,
		Mode:                mode,
		ExtraPaymentAmount:  input.ExtraPaymentAmount,
		WithoutExtraPayment: scenario(without, debt.MinimumPayment, decimal.Zero, input.AsOf),
		WithExtraPayment:    with,
		Impact:              impact,
	}
	result.Recommendation = recommend(result)
	return result, nil
}

// scenario converts a simulation into a Scenario. lumpSum is money paid up front
// and counts toward TotalPaid.
func scenario(details domain.LoanDetails, payment, lumpSum decimal.Decimal, asOf time.Time) Scenario {
	return Scenario{
		MonthlyPayment:    payment,
		MonthsToPayoff:    details.TermMonths,
		TotalInterestPaid: details.TotalInterestPaid,
		TotalPaid:         details.TotalPaid.Add(lumpSum),
		PayoffDate:        PayoffDate(asOf, details.TermMonths),
	}
}

// PayoffDate is the calendar date months after asOf
func PayoffDate(asOf time.Time, months int) time.Time {
	return asOf.AddDate(0, months, 0)
}

func recommend(r *Result) string {
	amount := r.ExtraPaymentAmount.StringFixed(2)
	saved := r.Impact.InterestSaved.StringFixed(2)

	if r.Mode == ModeRecurring {
		if r.Impact.MonthsSaved > 0 {
			return fmt.Sprintf("Adding $%s to your monthly payment will save you %d months and $%s in interest! Your new payoff date: %s",
				amount, r.Impact.MonthsSaved, saved, r.Impact.NewPayoffDate.Format(time.DateOnly))
		}
		return "Consider increasing your extra payment amount for more significant impact."
	}

	if r.Impact.MonthsSaved > 0 {
		return fmt.Sprintf("Making a one-time payment of $%s will save you %d months and $%s in interest!",
			amount, r.Impact.MonthsSaved, saved)
	}
	return "This extra payment will have minimal impact. Consider increasing the amount or making recurring payments."
}
