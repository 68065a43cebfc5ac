// Package debt is the entry point for every calculation: it resolves read-only
// debt snapshots from storage and hands value copies to the calculators.
package debt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/amortization"
	"github.com/simaogato/debtflow-backend/internal/usecase/consolidation"
	"github.com/simaogato/debtflow-backend/internal/usecase/extrapayment"
	"github.com/simaogato/debtflow-backend/internal/usecase/payoff"
	"github.com/simaogato/debtflow-backend/internal/usecase/refinance"
	"github.com/simaogato/debtflow-backend/internal/usecase/utilization"
)

// LoanInput describes a standalone loan for CalculateLoanDetails
type LoanInput struct {
	Balance        decimal.Decimal
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	TermMonths     int // 0 runs until paid off
}

// Service handles debt calculations
type Service struct {
	Repo domain.DebtRepository
	Now  func() time.Time
}

// NewService creates a new Service instance
func NewService(repo domain.DebtRepository) *Service {
	return &Service{
		Repo: repo,
		Now:  time.Now,
	}
}

// snapshot loads the debts a calculation works on: the given ids, or every
// active debt when ids is empty
func (s *Service) snapshot(ctx context.Context, ids []uuid.UUID) ([]domain.Debt, error) {
	if len(ids) == 0 {
		debts, err := s.Repo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list debts: %w", err)
		}
		return debts, nil
	}

	debts, err := s.Repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load debts: %w", err)
	}
	return debts, nil
}

// asOf returns t, or the current time when t is zero
func (s *Service) asOf(t time.Time) time.Time {
	if t.IsZero() {
		return s.Now()
	}
	return t
}

// CalculatePayoff runs the multi-debt payoff simulation
func (s *Service) CalculatePayoff(ctx context.Context, input payoff.Input) (*payoff.Result, error) {
	debts, err := s.snapshot(ctx, input.DebtIDs)
	if err != nil {
		return nil, err
	}
	return payoff.CalculatePayoffStrategy(debts, input)
}

// CompareRefinancing compares a stored debt against a refinancing offer
func (s *Service) CompareRefinancing(ctx context.Context, debtID uuid.UUID, input refinance.Input) (*refinance.Result, error) {
	debt, err := s.Repo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	return refinance.CompareRefinancing(*debt, input)
}

// PlanConsolidation evaluates consolidating the selected debts
func (s *Service) PlanConsolidation(ctx context.Context, input consolidation.Input) (*consolidation.Result, error) {
	if len(input.DebtIDs) == 0 {
		return nil, domain.NewValidationError("debt_ids", "at least one debt is required for consolidation")
	}
	debts, err := s.snapshot(ctx, input.DebtIDs)
	if err != nil {
		return nil, err
	}
	return consolidation.PlanConsolidation(debts, input)
}

// GetCreditUtilization reports utilization across the active credit cards
func (s *Service) GetCreditUtilization(ctx context.Context) (*utilization.Result, error) {
	debts, err := s.snapshot(ctx, nil)
	if err != nil {
		return nil, err
	}
	return utilization.CalculateCreditUtilization(debts)
}

// AnalyzeExtraPayment measures the effect of an extra payment on a stored debt.
// A zero input.AsOf means now.
func (s *Service) AnalyzeExtraPayment(ctx context.Context, debtID uuid.UUID, input extrapayment.Input) (*extrapayment.Result, error) {
	debt, err := s.Repo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	input.AsOf = s.asOf(input.AsOf)
	return extrapayment.AnalyzeExtraPaymentImpact(*debt, input)
}

// AnalyzeBulkExtraPayment places a lump sum on the highest-rate debt.
// A zero input.AsOf means now.
func (s *Service) AnalyzeBulkExtraPayment(ctx context.Context, input extrapayment.BulkInput) (*extrapayment.BulkResult, error) {
	debts, err := s.snapshot(ctx, input.DebtIDs)
	if err != nil {
		return nil, err
	}
	input.AsOf = s.asOf(input.AsOf)
	return extrapayment.AnalyzeBulkExtraPayment(debts, input)
}

// CalculateLoanDetails amortizes a standalone loan. It touches no storage.
func (s *Service) CalculateLoanDetails(_ context.Context, input LoanInput) (*amortization.Schedule, error) {
	return amortization.CalculateSchedule(input.Balance, input.InterestRate, input.MonthlyPayment, input.TermMonths)
}

// GetDebtStatistics summarizes the active debts
func (s *Service) GetDebtStatistics(ctx context.Context) (*Statistics, error) {
	debts, err := s.snapshot(ctx, nil)
	if err != nil {
		return nil, err
	}
	stats := ComputeStatistics(debts)
	return &stats, nil
}

// UpdateCreditLimit sets the credit limit of a credit card and returns the updated debt.
// Logic:
//  1. Validate the limit is not negative
//  2. Fetch the debt and ensure it is a credit card
//  3. Persist the new limit
func (s *Service) UpdateCreditLimit(ctx context.Context, debtID uuid.UUID, limit decimal.Decimal) (*domain.Debt, error) {
	if err := domain.ValidateAmount("credit_limit", limit); err != nil {
		return nil, err
	}

	debt, err := s.Repo.GetByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt.Type != domain.DebtTypeCreditCard {
		return nil, domain.NewValidationError("credit_limit", "this debt is not a credit card")
	}

	if err := s.Repo.UpdateCreditLimit(ctx, debtID, limit); err != nil {
		return nil, fmt.Errorf("failed to update credit limit: %w", err)
	}

	updated := *debt
	updated.CreditLimit = decimal.NewNullDecimal(limit)
	return &updated, nil
}
