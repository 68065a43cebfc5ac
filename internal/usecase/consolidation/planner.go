// Package consolidation evaluates rolling several debts into one new loan.
package consolidation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/amortization"
)

// Outcome classifies a consolidation plan
type Outcome string

const (
	OutcomeRecommended                  Outcome = "RECOMMENDED"
	OutcomeLowerPaymentFeesExceedSaving Outcome = "LOWER_PAYMENT_FEES_EXCEED_SAVINGS"
	OutcomeNotRecommended               Outcome = "NOT_RECOMMENDED"
)

// Input describes the consolidation loan on offer
type Input struct {
	DebtIDs                  []uuid.UUID
	ConsolidatedInterestRate decimal.Decimal
	ConsolidatedTermMonths   int
	ConsolidationFees        decimal.Decimal
}

// DebtSummary is one debt being consolidated, as it stands today
type DebtSummary struct {
	ID             uuid.UUID
	Name           string
	Balance        decimal.Decimal
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
}

// ConsolidatedLoan describes the replacement loan. TotalPaid includes Fees.
type ConsolidatedLoan struct {
	TotalBalance      decimal.Decimal
	InterestRate      decimal.Decimal
	MonthlyPayment    decimal.Decimal
	TermMonths        int
	TotalInterestPaid decimal.Decimal
	TotalPaid         decimal.Decimal
	Fees              decimal.Decimal
}

// Comparison holds current against consolidated figures
type Comparison struct {
	CurrentTotalMonthlyPayment decimal.Decimal
	ConsolidatedMonthlyPayment decimal.Decimal
	MonthlyPaymentDifference   decimal.Decimal
	CurrentTotalInterest       decimal.Decimal
	ConsolidatedTotalInterest  decimal.Decimal
	TotalInterestSavings       decimal.Decimal
	IsWorthIt                  bool
}

// Result is the outcome of PlanConsolidation
type Result struct {
	CurrentDebts     []DebtSummary
	ConsolidatedLoan ConsolidatedLoan
	Comparison       Comparison
	Outcome          Outcome
	Recommendation   string
}

// PlanConsolidation compares paying the selected debts individually at their
// minimums with a single loan for their combined balance.
//
// A plan is worth it only when it both saves more interest than it costs in fees
// and lowers the combined monthly payment.
func PlanConsolidation(debts []domain.Debt, input Input) (*Result, error) {
	if len(input.DebtIDs) == 0 {
		return nil, domain.NewValidationError("debt_ids", "at least one debt is required for consolidation")
	}
	if err := domain.ValidateRate("consolidated_interest_rate", input.ConsolidatedInterestRate); err != nil {
		return nil, err
	}
	if input.ConsolidatedTermMonths < 1 || input.ConsolidatedTermMonths > domain.MaxTermMonths {
		return nil, domain.NewValidationError("consolidated_term_months", "must be between 1 and 600")
	}
	if err := domain.ValidateAmount("consolidation_fees", input.ConsolidationFees); err != nil {
		return nil, err
	}

	selected := domain.FilterDebts(debts, input.DebtIDs)
	if len(selected) == 0 {
		return nil, domain.NewValidationError("debt_ids", "no debts found for consolidation")
	}

	current := make([]DebtSummary, 0, len(selected))
	totalBalance := decimal.Zero
	currentPayment := decimal.Zero
	currentInterest := decimal.Zero

	for _, debt := range selected {
		if err := debt.ValidateForCalculation(); err != nil {
			return nil, err
		}
		details, err := amortization.CalculateLoanDetails(debt.CurrentBalance, debt.InterestRate, debt.MinimumPayment, 0)
		if err != nil {
			return nil, fmt.Errorf("debt %s: %w", debt.Name, err)
		}

		current = append(current, DebtSummary{
			ID:             debt.ID,
			Name:           debt.Name,
			Balance:        debt.CurrentBalance,
			InterestRate:   debt.InterestRate,
			MonthlyPayment: debt.MinimumPayment,
		})
		totalBalance = totalBalance.Add(debt.CurrentBalance)
		currentPayment = currentPayment.Add(debt.MinimumPayment)
		currentInterest = currentInterest.Add(details.TotalInterestPaid)
	}

	if !totalBalance.IsPositive() {
		return nil, domain.NewValidationError("debt_ids", "selected debts carry no balance")
	}

	payment, err := amortization.CalculateMonthlyPayment(totalBalance, input.ConsolidatedInterestRate, input.ConsolidatedTermMonths)
	if err != nil {
		return nil, fmt.Errorf("consolidated payment: %w", err)
	}
	details, err := amortization.CalculateLoanDetails(totalBalance, input.ConsolidatedInterestRate, payment, input.ConsolidatedTermMonths)
	if err != nil {
		return nil, fmt.Errorf("consolidated loan: %w", err)
	}

	comparison := Comparison{
		CurrentTotalMonthlyPayment: currentPayment,
		ConsolidatedMonthlyPayment: payment,
		MonthlyPaymentDifference:   currentPayment.Sub(payment),
		CurrentTotalInterest:       currentInterest,
		ConsolidatedTotalInterest:  details.TotalInterestPaid,
		TotalInterestSavings:       currentInterest.Sub(details.TotalInterestPaid),
	}
	comparison.IsWorthIt = comparison.TotalInterestSavings.GreaterThan(input.ConsolidationFees) &&
		comparison.MonthlyPaymentDifference.IsPositive()

	outcome := classify(comparison)
	return &Result{
		CurrentDebts: current,
		ConsolidatedLoan: ConsolidatedLoan{
			TotalBalance:      totalBalance,
			InterestRate:      input.ConsolidatedInterestRate,
			MonthlyPayment:    payment,
			TermMonths:        input.ConsolidatedTermMonths,
			TotalInterestPaid: details.TotalInterestPaid,
			TotalPaid:         details.TotalPaid.Add(input.ConsolidationFees),
			Fees:              input.ConsolidationFees,
		},
		Comparison:     comparison,
		Outcome:        outcome,
		Recommendation: recommend(outcome, comparison, input.ConsolidationFees),
	}, nil
}

func classify(c Comparison) Outcome {
	switch {
	case c.IsWorthIt:
		return OutcomeRecommended
	case c.MonthlyPaymentDifference.IsPositive():
		// Interest savings do not cover the fees
		return OutcomeLowerPaymentFeesExceedSaving
	default:
		return OutcomeNotRecommended
	}
}

func recommend(outcome Outcome, c Comparison, fees decimal.Decimal) string {
	switch outcome {
	case OutcomeRecommended:
		return fmt.Sprintf("Consolidation is recommended! You'll save $%s in interest and reduce your monthly payment by $%s. Total savings: $%s.",
			c.TotalInterestSavings.StringFixed(2),
			c.MonthlyPaymentDifference.StringFixed(2),
			c.TotalInterestSavings.Sub(fees).StringFixed(2))
	case OutcomeLowerPaymentFeesExceedSaving:
		return fmt.Sprintf("Consolidation will lower your monthly payment by $%s, but the fees ($%s) exceed the interest savings ($%s).",
			c.MonthlyPaymentDifference.StringFixed(2),
			fees.StringFixed(2),
			c.TotalInterestSavings.StringFixed(2))
	default:
		return "Consolidation is not recommended. You're better off keeping your current debts and paying them individually."
	}
}
