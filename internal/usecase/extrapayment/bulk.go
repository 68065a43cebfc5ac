package extrapayment

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
)

// BulkInput describes a lump sum to place somewhere in the portfolio
type BulkInput struct {
	ExtraPaymentAmount decimal.Decimal
	DebtIDs            []uuid.UUID // Optional restriction
	AsOf               time.Time
}

// BulkResult is the outcome of AnalyzeBulkExtraPayment
type BulkResult struct {
	TotalExtraPayment  decimal.Decimal
	TargetDebtID       uuid.UUID
	DebtsImpacted      int
	DebtImpacts        []*Result
	TotalMonthsSaved   int
	TotalInterestSaved decimal.Decimal
	Recommendation     string
}

// AnalyzeBulkExtraPayment applies the whole amount, undivided and as a one-time
// payment, to the active debt with the highest interest rate that still carries a
// balance. Equal rates keep the input order.
func AnalyzeBulkExtraPayment(debts []domain.Debt, input BulkInput) (*BulkResult, error) {
	if err := domain.ValidateAmount("extra_payment_amount", input.ExtraPaymentAmount); err != nil {
		return nil, err
	}

	selected := domain.FilterDebts(debts, input.DebtIDs)
	if len(selected) == 0 {
		return nil, domain.NewValidationError("debt_ids", "no debts found")
	}
	candidates := domain.OutstandingDebts(selected)
	if len(candidates) == 0 {
		return nil, domain.NewValidationError("debt_ids", "every selected debt is already paid off")
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].InterestRate.GreaterThan(candidates[j].InterestRate)
	})
	target := candidates[0]

	impact, err := AnalyzeExtraPaymentImpact(target, Input{
		ExtraPaymentAmount: input.ExtraPaymentAmount,
		AsOf:               input.AsOf,
	})
	if err != nil {
		return nil, fmt.Errorf("debt %s: %w", target.Name, err)
	}

	result := &BulkResult{
		TotalExtraPayment:  input.ExtraPaymentAmount,
		TargetDebtID:       target.ID,
		DebtsImpacted:      1,
		DebtImpacts:        []*Result{impact},
		TotalMonthsSaved:   impact.Impact.MonthsSaved,
		TotalInterestSaved: impact.Impact.InterestSaved,
	}

	if result.TotalInterestSaved.IsPositive() {
		result.Recommendation = fmt.Sprintf("Apply the $%s extra payment to %s (highest interest rate: %s%%). This will save you %d months and $%s in interest!",
			input.ExtraPaymentAmount.StringFixed(2), target.Name, target.InterestRate.String(),
			result.TotalMonthsSaved, result.TotalInterestSaved.StringFixed(2))
	} else {
		result.Recommendation = "Consider distributing the payment differently or increasing the amount."
	}
	return result, nil
}
