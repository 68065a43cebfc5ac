// Package amortization simulates single-loan repayment schedules and provides
// the closed-form payment and term formulas every other calculator builds on.
package amortization

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

// CentPlaces is the precision interest is accrued at each month
const CentPlaces = 2

var (
	one           = decimal.NewFromInt(1)
	twelveHundred = decimal.NewFromInt(1200)
)

// Schedule is a full amortization: the summary plus every simulated month
type Schedule struct {
	Details  domain.LoanDetails
	Payments []domain.MonthlyPayment
}

// MonthlyRate converts an annual percentage rate into a monthly fraction (rate / 1200)
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(twelveHundred)
}

// MonthlyInterest returns the interest accrued on balance over one month, rounded to the cent
func MonthlyInterest(balance, monthlyRate decimal.Decimal) decimal.Decimal {
	return balance.Mul(monthlyRate).Round(CentPlaces)
}

// CheckPayment returns an *InsufficientPaymentError when payment does not exceed the
// interest balance accrues in its first month. A zero balance needs no payment.
func CheckPayment(balance, annualRatePercent, payment decimal.Decimal) error {
	if !balance.IsPositive() {
		return nil
	}
	interest := MonthlyInterest(balance, MonthlyRate(annualRatePercent))
	if payment.LessThanOrEqual(interest) {
		return &domain.InsufficientPaymentError{Payment: payment, Interest: interest}
	}
	return nil
}

// CalculateLoanDetails simulates paying balance down with a fixed monthly payment.
//
// maxTermMonths <= 0 means open-ended: the loan runs until paid off, bounded by
// domain.MaxTermMonths. A positive maxTermMonths is a fixed term: the final
// installment settles any residual rounding difference up to one payment.
// Either way, a balance still outstanding after the term is a *TermExceededError.
func CalculateLoanDetails(balance, annualRatePercent, monthlyPayment decimal.Decimal, maxTermMonths int) (domain.LoanDetails, error) {
	schedule, err := simulate(balance, annualRatePercent, monthlyPayment, maxTermMonths, false)
	if err != nil {
		return domain.LoanDetails{}, err
	}
	return schedule.Details, nil
}

// CalculateSchedule is CalculateLoanDetails with the month-by-month breakdown
func CalculateSchedule(balance, annualRatePercent, monthlyPayment decimal.Decimal, maxTermMonths int) (*Schedule, error) {
	return simulate(balance, annualRatePercent, monthlyPayment, maxTermMonths, true)
}

func simulate(balance, annualRatePercent, payment decimal.Decimal, maxTermMonths int, record bool) (*Schedule, error) {
	if err := domain.ValidateAmount("balance", balance); err != nil {
		return nil, err
	}
	if err := domain.ValidateRate("interest_rate", annualRatePercent); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount("monthly_payment", payment); err != nil {
		return nil, err
	}
	if maxTermMonths > domain.MaxTermMonths {
		return nil, domain.NewValidationError("term_months", "must not exceed 600 months")
	}

	schedule := &Schedule{
		Details: domain.LoanDetails{
			Balance:           balance,
			InterestRate:      annualRatePercent,
			MonthlyPayment:    payment,
			TotalInterestPaid: decimal.Zero,
			TotalPaid:         balance,
		},
	}
	if !balance.IsPositive() {
		return schedule, nil
	}

	// Reject before looping: the payment has to shrink the balance in month one
	if err := CheckPayment(balance, annualRatePercent, payment); err != nil {
		return nil, err
	}

	fixedTerm := maxTermMonths > 0
	term := maxTermMonths
	if !fixedTerm {
		term = domain.MaxTermMonths
	}

	monthlyRate := MonthlyRate(annualRatePercent)
	remaining := balance
	totalInterest := decimal.Zero
	month := 0

	for remaining.IsPositive() {
		if month >= term {
			return nil, &domain.TermExceededError{MaxMonths: term, RemainingBalance: remaining}
		}
		month++

		interest := MonthlyInterest(remaining, monthlyRate)
		principal := decimal.Min(payment.Sub(interest), remaining)
		if fixedTerm && month == term {
			if residual := remaining.Sub(principal); residual.IsPositive() && residual.LessThanOrEqual(payment) {
				principal = remaining
			}
		}

		remaining = remaining.Sub(principal)
		totalInterest = totalInterest.Add(interest)

		if record {
			schedule.Payments = append(schedule.Payments, domain.MonthlyPayment{
				Month:            month,
				TotalPayment:     principal.Add(interest),
				PrincipalPaid:    principal,
				InterestPaid:     interest,
				RemainingBalance: decimal.Max(remaining, decimal.Zero),
			})
		}
	}

	schedule.Details.TermMonths = month
	schedule.Details.TotalInterestPaid = totalInterest
	schedule.Details.TotalPaid = balance.Add(totalInterest)
	return schedule, nil
}

// CalculateMonthlyPayment returns the level payment that amortizes principal over
// months at annualRatePercent, rounded to the cent:
//
//	M = P·r·(1+r)^n / ((1+r)^n − 1), or P/n when r = 0
func CalculateMonthlyPayment(principal, annualRatePercent decimal.Decimal, months int) (decimal.Decimal, error) {
	if err := domain.ValidateAmount("principal", principal); err != nil {
		return decimal.Zero, err
	}
	if err := domain.ValidateRate("interest_rate", annualRatePercent); err != nil {
		return decimal.Zero, err
	}
	if months <= 0 || months > domain.MaxTermMonths {
		return decimal.Zero, domain.NewValidationError("term_months", "must be between 1 and 600")
	}

	n := decimal.NewFromInt(int64(months))
	r := MonthlyRate(annualRatePercent)
	if r.IsZero() {
		return principal.Div(n).Round(CentPlaces), nil
	}

	growth, err := one.Add(r).PowInt32(int32(months))
	if err != nil {
		return decimal.Zero, err
	}
	growth = growth.Round(20)

	payment := principal.Mul(r).Mul(growth).Div(growth.Sub(one))
	return payment.Round(CentPlaces), nil
}

// CalculateRemainingTerm returns how many months payment needs to retire balance:
//
//	n = ceil(ln(p / (p − b·r)) / ln(1+r)), or ceil(b/p) when r = 0
//
// A payment that does not exceed b·r never retires the loan and is rejected.
func CalculateRemainingTerm(balance, payment, annualRatePercent decimal.Decimal) (int, error) {
	if err := domain.ValidateAmount("balance", balance); err != nil {
		return 0, err
	}
	if err := domain.ValidateRate("interest_rate", annualRatePercent); err != nil {
		return 0, err
	}
	if !balance.IsPositive() {
		return 0, nil
	}

	r := MonthlyRate(annualRatePercent)
	interest := balance.Mul(r)
	if payment.LessThanOrEqual(interest) {
		return 0, &domain.InsufficientPaymentError{Payment: payment, Interest: interest.Round(CentPlaces)}
	}

	var months decimal.Decimal
	if r.IsZero() {
		months = balance.Div(payment)
	} else {
		numerator, err := payment.Div(payment.Sub(interest)).Ln(16)
		if err != nil {
			return 0, err
		}
		denominator, err := one.Add(r).Ln(16)
		if err != nil {
			return 0, err
		}
		months = numerator.Div(denominator)
	}

	// Trim log noise so an exact whole number of months does not round up
	term := months.Round(8).Ceil().IntPart()
	if term > domain.MaxTermMonths {
		return 0, &domain.TermExceededError{MaxMonths: domain.MaxTermMonths, RemainingBalance: balance}
	}
	return int(term), nil
}
