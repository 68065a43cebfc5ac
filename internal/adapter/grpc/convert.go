package grpc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	debtflowv1 "github.com/simaogato/debtflow-backend/internal/adapter/grpc/debtflow/v1"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/amortization"
	"github.com/simaogato/debtflow-backend/internal/usecase/consolidation"
	"github.com/simaogato/debtflow-backend/internal/usecase/debt"
	"github.com/simaogato/debtflow-backend/internal/usecase/extrapayment"
	"github.com/simaogato/debtflow-backend/internal/usecase/payoff"
	"github.com/simaogato/debtflow-backend/internal/usecase/refinance"
	"github.com/simaogato/debtflow-backend/internal/usecase/utilization"
)

// parseDecimal parses a required decimal field
func parseDecimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

// parseOptionalDecimal parses a decimal field where empty means zero
func parseOptionalDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return parseDecimal(field, value)
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

func parseIDs(field string, values []string) ([]uuid.UUID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := parseID(field, v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseDate parses an optional YYYY-MM-DD date; empty yields the zero time
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return t, nil
}

func optionalInt(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func money(d decimal.Decimal) string {
	return d.StringFixed(amortization.CentPlaces)
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func paymentsToProto(payments []domain.MonthlyPayment) []*debtflowv1.MonthlyPayment {
	out := make([]*debtflowv1.MonthlyPayment, 0, len(payments))
	for _, p := range payments {
		out = append(out, &debtflowv1.MonthlyPayment{
			Month:            int32(p.Month),
			TotalPayment:     money(p.TotalPayment),
			PrincipalPaid:    money(p.PrincipalPaid),
			InterestPaid:     money(p.InterestPaid),
			RemainingBalance: money(p.RemainingBalance),
		})
	}
	return out
}

func loanDetailsToProto(details domain.LoanDetails) *debtflowv1.LoanDetails {
	return &debtflowv1.LoanDetails{
		Balance:           money(details.Balance),
		InterestRate:      details.InterestRate.String(),
		MonthlyPayment:    money(details.MonthlyPayment),
		TermMonths:        int32(details.TermMonths),
		TotalInterestPaid: money(details.TotalInterestPaid),
		TotalPaid:         money(details.TotalPaid),
	}
}

func payoffToProto(result *payoff.Result) *debtflowv1.CalculatePayoffResponse {
	schedules := make([]*debtflowv1.DebtPayoffSchedule, 0, len(result.PayoffSchedule))
	for _, s := range result.PayoffSchedule {
		schedules = append(schedules, &debtflowv1.DebtPayoffSchedule{
			DebtID:            s.DebtID.String(),
			DebtName:          s.DebtName,
			OriginalBalance:   money(s.OriginalBalance),
			InterestRate:      s.InterestRate.String(),
			MinimumPayment:    money(s.MinimumPayment),
			TotalPaid:         money(s.TotalPaid),
			TotalInterestPaid: money(s.TotalInterestPaid),
			MonthsToPayoff:    int32(s.MonthsToPayoff),
			PayoffOrder:       int32(s.PayoffOrder),
			MonthlyPayments:   paymentsToProto(s.MonthlyPayments),
		})
	}

	return &debtflowv1.CalculatePayoffResponse{
		Strategy:          string(result.Strategy),
		TotalMonths:       int32(result.TotalMonths),
		TotalInterestPaid: money(result.TotalInterestPaid),
		TotalPaid:         money(result.TotalPaid),
		MonthlyBreakdown:  paymentsToProto(result.MonthlyBreakdown),
		PayoffSchedule:    schedules,
		Summary: &debtflowv1.PayoffSummary{
			TotalDebts:           int32(result.Summary.TotalDebts),
			TotalStartingBalance: money(result.Summary.TotalStartingBalance),
			RecommendedStrategy:  string(result.Summary.RecommendedStrategy),
			TotalInterestSaved:   money(result.Summary.TotalInterestSaved),
			MonthsSaved:          int32(result.Summary.MonthsSaved),
			BaselineAvailable:    result.Summary.BaselineAvailable,
		},
	}
}

func refinanceToProto(result *refinance.Result) *debtflowv1.CompareRefinancingResponse {
	resp := &debtflowv1.CompareRefinancingResponse{
		CurrentLoan:    loanDetailsToProto(result.CurrentLoan),
		RefinancedLoan: loanDetailsToProto(result.RefinancedLoan),
		Fees:           money(result.Fees),
		Comparison: &debtflowv1.RefinanceComparison{
			MonthlyPaymentDifference: money(result.Comparison.MonthlyPaymentDifference),
			TotalInterestSavings:     money(result.Comparison.TotalInterestSavings),
			TotalSavings:             money(result.Comparison.TotalSavings),
			IsWorthIt:                result.Comparison.IsWorthIt,
		},
		Recommendation: result.Recommendation,
	}
	if result.BreakEvenMonth != nil {
		month := int32(*result.BreakEvenMonth)
		resp.BreakEvenMonth = &month
	}
	return resp
}

func consolidationToProto(result *consolidation.Result) *debtflowv1.PlanConsolidationResponse {
	debts := make([]*debtflowv1.ConsolidationDebt, 0, len(result.CurrentDebts))
	for _, d := range result.CurrentDebts {
		debts = append(debts, &debtflowv1.ConsolidationDebt{
			ID:             d.ID.String(),
			Name:           d.Name,
			Balance:        money(d.Balance),
			InterestRate:   d.InterestRate.String(),
			MonthlyPayment: money(d.MonthlyPayment),
		})
	}

	loan := result.ConsolidatedLoan
	c := result.Comparison
	return &debtflowv1.PlanConsolidationResponse{
		CurrentDebts: debts,
		ConsolidatedLoan: &debtflowv1.ConsolidatedLoan{
			TotalBalance:      money(loan.TotalBalance),
			InterestRate:      loan.InterestRate.String(),
			MonthlyPayment:    money(loan.MonthlyPayment),
			TermMonths:        int32(loan.TermMonths),
			TotalInterestPaid: money(loan.TotalInterestPaid),
			TotalPaid:         money(loan.TotalPaid),
			Fees:              money(loan.Fees),
		},
		Comparison: &debtflowv1.ConsolidationComparison{
			CurrentTotalMonthlyPayment: money(c.CurrentTotalMonthlyPayment),
			ConsolidatedMonthlyPayment: money(c.ConsolidatedMonthlyPayment),
			MonthlyPaymentDifference:   money(c.MonthlyPaymentDifference),
			CurrentTotalInterest:       money(c.CurrentTotalInterest),
			ConsolidatedTotalInterest:  money(c.ConsolidatedTotalInterest),
			TotalInterestSavings:       money(c.TotalInterestSavings),
			IsWorthIt:                  c.IsWorthIt,
		},
		Outcome:        string(result.Outcome),
		Recommendation: result.Recommendation,
	}
}

func utilizationToProto(result *utilization.Result) *debtflowv1.GetCreditUtilizationResponse {
	cards := make([]*debtflowv1.CardUtilization, 0, len(result.UtilizationByCard))
	for _, c := range result.UtilizationByCard {
		cards = append(cards, &debtflowv1.CardUtilization{
			DebtID:         c.DebtID.String(),
			CardName:       c.CardName,
			CreditLimit:    money(c.CreditLimit),
			CurrentBalance: money(c.CurrentBalance),
			Utilization:    c.Utilization.StringFixed(utilization.PercentPlaces),
			Band:           string(c.Band),
			Recommendation: c.Recommendation,
		})
	}
	missing := make([]*debtflowv1.MissingCreditLimit, 0, len(result.CardsMissingLimit))
	for _, m := range result.CardsMissingLimit {
		missing = append(missing, &debtflowv1.MissingCreditLimit{
			DebtID:   m.DebtID.String(),
			CardName: m.CardName,
		})
	}

	return &debtflowv1.GetCreditUtilizationResponse{
		TotalCreditLimit:      money(result.TotalCreditLimit),
		TotalUsedCredit:       money(result.TotalUsedCredit),
		UtilizationPercentage: result.UtilizationPercentage.StringFixed(utilization.PercentPlaces),
		Band:                  string(result.Band),
		UtilizationByCard:     cards,
		CardsMissingLimit:     missing,
		Recommendation:        result.Recommendation,
		ImpactOnCreditScore:   result.ImpactOnCreditScore,
	}
}

func scenarioToProto(s extrapayment.Scenario) *debtflowv1.PaymentScenario {
	return &debtflowv1.PaymentScenario{
		MonthlyPayment:    money(s.MonthlyPayment),
		MonthsToPayoff:    int32(s.MonthsToPayoff),
		TotalInterestPaid: money(s.TotalInterestPaid),
		TotalPaid:         money(s.TotalPaid),
		PayoffDate:        formatDate(s.PayoffDate),
	}
}

func extraPaymentToProto(result *extrapayment.Result) *debtflowv1.AnalyzeExtraPaymentResponse {
	return &debtflowv1.AnalyzeExtraPaymentResponse{
		DebtID:              result.DebtID.String(),
		DebtName:            result.DebtName,
		CurrentBalance:      money(result.CurrentBalance),
		InterestRate:        result.InterestRate.String(),
		Mode:                string(result.Mode),
		ExtraPaymentAmount:  money(result.ExtraPaymentAmount),
		WithoutExtraPayment: scenarioToProto(result.WithoutExtraPayment),
		WithExtraPayment:    scenarioToProto(result.WithExtraPayment),
		Impact: &debtflowv1.ExtraPaymentImpact{
			MonthsSaved:      int32(result.Impact.MonthsSaved),
			InterestSaved:    money(result.Impact.InterestSaved),
			TotalSaved:       money(result.Impact.TotalSaved),
			PercentageFaster: result.Impact.PercentageFaster.StringFixed(2),
			NewPayoffDate:    formatDate(result.Impact.NewPayoffDate),
		},
		Recommendation: result.Recommendation,
	}
}

func bulkExtraPaymentToProto(result *extrapayment.BulkResult) *debtflowv1.AnalyzeBulkExtraPaymentResponse {
	impacts := make([]*debtflowv1.AnalyzeExtraPaymentResponse, 0, len(result.DebtImpacts))
	for _, impact := range result.DebtImpacts {
		impacts = append(impacts, extraPaymentToProto(impact))
	}
	return &debtflowv1.AnalyzeBulkExtraPaymentResponse{
		TotalExtraPayment:  money(result.TotalExtraPayment),
		TargetDebtID:       result.TargetDebtID.String(),
		DebtsImpacted:      int32(result.DebtsImpacted),
		DebtImpacts:        impacts,
		TotalMonthsSaved:   int32(result.TotalMonthsSaved),
		TotalInterestSaved: money(result.TotalInterestSaved),
		Recommendation:     result.Recommendation,
	}
}

func statisticsToProto(stats *debt.Statistics) *debtflowv1.GetDebtStatisticsResponse {
	byType := make([]*debtflowv1.DebtTypeBreakdown, 0, len(stats.DebtByType))
	for _, b := range stats.DebtByType {
		byType = append(byType, &debtflowv1.DebtTypeBreakdown{
			Type:                string(b.Type),
			Count:               int32(b.Count),
			TotalBalance:        money(b.TotalBalance),
			TotalMinimumPayment: money(b.TotalMinimumPayment),
		})
	}
	return &debtflowv1.GetDebtStatisticsResponse{
		TotalDebts:          int32(stats.TotalDebts),
		TotalDebt:           money(stats.TotalDebt),
		TotalMinimumPayment: money(stats.TotalMinimumPayment),
		AverageInterestRate: stats.AverageInterestRate.StringFixed(debt.RatePlaces),
		HighestInterestRate: stats.HighestInterestRate.String(),
		DebtByType:          byType,
	}
}

func debtToProto(d *domain.Debt) *debtflowv1.Debt {
	out := &debtflowv1.Debt{
		ID:             d.ID.String(),
		Name:           d.Name,
		Type:           string(d.Type),
		OriginalAmount: money(d.OriginalAmount),
		CurrentBalance: money(d.CurrentBalance),
		InterestRate:   d.InterestRate.String(),
		MinimumPayment: money(d.MinimumPayment),
		PaymentDueDate: int32(d.PaymentDueDate),
		CreditorName:   d.CreditorName,
		IsActive:       d.IsActive,
		StartDate:      formatDate(d.StartDate),
	}
	if d.CreditLimit.Valid {
		out.CreditLimit = money(d.CreditLimit.Decimal)
	}
	return out
}
