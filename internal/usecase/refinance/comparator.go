// Package refinance compares keeping a debt against refinancing it at a new rate.
package refinance

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/amortization"
)

// Input describes the refinancing offer
type Input struct {
	NewInterestRate decimal.Decimal
	RefinancingFees decimal.Decimal
	NewTermMonths   *int // nil derives the term from the current payment
}

// Comparison holds current minus refinanced figures; positive values favor refinancing
type Comparison struct {
	MonthlyPaymentDifference decimal.Decimal
	TotalInterestSavings     decimal.Decimal
	TotalSavings             decimal.Decimal
	IsWorthIt                bool
}

// Result is the outcome of CompareRefinancing
type Result struct {
	CurrentLoan    domain.LoanDetails
	RefinancedLoan domain.LoanDetails // TotalPaid includes the fees
	Fees           decimal.Decimal
	Comparison     Comparison

	// BreakEvenMonth is nil when refinancing does not lower the monthly payment,
	// since the fees are then never recovered through payment savings.
	BreakEvenMonth *int
	Recommendation string
}

// CompareRefinancing prices the debt as it stands and as refinanced.
//
// The current loan runs at the debt's rate and minimum payment until paid off.
// The refinanced loan amortizes the same balance at the new rate over
// NewTermMonths, or over the term the current payment would need when absent.
func CompareRefinancing(debt domain.Debt, input Input) (*Result, error) {
	if err := debt.ValidateForCalculation(); err != nil {
		return nil, err
	}
	if err := domain.ValidateRate("new_interest_rate", input.NewInterestRate); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount("refinancing_fees", input.RefinancingFees); err != nil {
		return nil, err
	}
	if input.NewTermMonths != nil && (*input.NewTermMonths < 1 || *input.NewTermMonths > domain.MaxTermMonths) {
		return nil, domain.NewValidationError("new_term_months", "must be between 1 and 600")
	}
	if !debt.CurrentBalance.IsPositive() {
		return nil, domain.NewValidationError("current_balance", "debt has no balance to refinance")
	}

	currentLoan, err := amortization.CalculateLoanDetails(debt.CurrentBalance, debt.InterestRate, debt.MinimumPayment, 0)
	if err != nil {
		return nil, fmt.Errorf("current loan: %w", err)
	}

	var termMonths int
	if input.NewTermMonths != nil {
		termMonths = *input.NewTermMonths
	} else {
		termMonths, err = amortization.CalculateRemainingTerm(debt.CurrentBalance, debt.MinimumPayment, debt.InterestRate)
		if err != nil {
			return nil, fmt.Errorf("remaining term: %w", err)
		}
	}

	newPayment, err := amortization.CalculateMonthlyPayment(debt.CurrentBalance, input.NewInterestRate, termMonths)
	if err != nil {
		return nil, fmt.Errorf("refinanced payment: %w", err)
	}
	refinancedLoan, err := amortization.CalculateLoanDetails(debt.CurrentBalance, input.NewInterestRate, newPayment, termMonths)
	if err != nil {
		return nil, fmt.Errorf("refinanced loan: %w", err)
	}
	refinancedLoan.TotalPaid = refinancedLoan.TotalPaid.Add(input.RefinancingFees)

	comparison := Comparison{
		MonthlyPaymentDifference: currentLoan.MonthlyPayment.Sub(refinancedLoan.MonthlyPayment),
		TotalInterestSavings:     currentLoan.TotalInterestPaid.Sub(refinancedLoan.TotalInterestPaid),
		TotalSavings:             currentLoan.TotalPaid.Sub(refinancedLoan.TotalPaid),
	}
	comparison.IsWorthIt = comparison.TotalSavings.IsPositive() &&
		comparison.TotalInterestSavings.GreaterThan(input.RefinancingFees)

	result := &Result{
		CurrentLoan:    currentLoan,
		RefinancedLoan: refinancedLoan,
		Fees:           input.RefinancingFees,
		Comparison:     comparison,
		BreakEvenMonth: breakEvenMonth(input.RefinancingFees, comparison.MonthlyPaymentDifference),
	}
	result.Recommendation = recommend(result)
	return result, nil
}

// breakEvenMonth returns ceil(fees / monthlyDifference), 0 without fees, and nil
// when the new payment is not lower
func breakEvenMonth(fees, monthlyDifference decimal.Decimal) *int {
	if !fees.IsPositive() {
		month := 0
		return &month
	}
	if !monthlyDifference.IsPositive() {
		return nil
	}
	month := int(fees.Div(monthlyDifference).Ceil().IntPart())
	return &month
}

func recommend(r *Result) string {
	c := r.Comparison
	if !c.IsWorthIt {
		return "Refinancing is not recommended. The fees and interest rate difference don't result in significant savings."
	}

	text := fmt.Sprintf("Refinancing is recommended! You'll save $%s over the life of the loan", c.TotalSavings.StringFixed(2))
	if c.MonthlyPaymentDifference.IsPositive() {
		text += fmt.Sprintf(" and reduce your monthly payment by $%s.", c.MonthlyPaymentDifference.StringFixed(2))
	} else {
		text += fmt.Sprintf(", although your monthly payment rises by $%s.", c.MonthlyPaymentDifference.Neg().StringFixed(2))
	}
	if r.BreakEvenMonth != nil {
		text += fmt.Sprintf(" Break-even point: %d months.", *r.BreakEvenMonth)
	} else {
		text += " The fees are not recovered through lower monthly payments."
	}
	return text
}
