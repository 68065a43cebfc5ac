package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	debtflowv1 "github.com/simaogato/debtflow-backend/internal/adapter/grpc/debtflow/v1"
	"github.com/simaogato/debtflow-backend/internal/domain"
	"github.com/simaogato/debtflow-backend/internal/usecase/consolidation"
	"github.com/simaogato/debtflow-backend/internal/usecase/debt"
	"github.com/simaogato/debtflow-backend/internal/usecase/extrapayment"
	"github.com/simaogato/debtflow-backend/internal/usecase/payoff"
	"github.com/simaogato/debtflow-backend/internal/usecase/refinance"
)

// Server implements the DebtFlowService gRPC server
type Server struct {
	debtflowv1.UnimplementedDebtFlowServiceServer

	DebtService *debt.Service
}

// NewServer creates a new gRPC server instance
func NewServer(debtService *debt.Service) *Server {
	return &Server{
		DebtService: debtService,
	}
}

// CalculatePayoff handles the CalculatePayoff RPC
func (s *Server) CalculatePayoff(ctx context.Context, req *debtflowv1.CalculatePayoffRequest) (*debtflowv1.CalculatePayoffResponse, error) {
	extra, err := parseOptionalDecimal("extra_monthly_payment", req.ExtraMonthlyPayment)
	if err != nil {
		return nil, err
	}

	debtIDs, err := parseIDs("debt_ids", req.DebtIDs)
	if err != nil {
		return nil, err
	}

	result, err := s.DebtService.CalculatePayoff(ctx, payoff.Input{
		Strategy:            domain.PayoffStrategy(req.Strategy),
		ExtraMonthlyPayment: extra,
		DebtIDs:             debtIDs,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return payoffToProto(result), nil
}

// CompareRefinancing handles the CompareRefinancing RPC
func (s *Server) CompareRefinancing(ctx context.Context, req *debtflowv1.CompareRefinancingRequest) (*debtflowv1.CompareRefinancingResponse, error) {
	debtID, err := parseID("debt_id", req.DebtID)
	if err != nil {
		return nil, err
	}

	rate, err := parseDecimal("new_interest_rate", req.NewInterestRate)
	if err != nil {
		return nil, err
	}

	fees, err := parseOptionalDecimal("refinancing_fees", req.RefinancingFees)
	if err != nil {
		return nil, err
	}

	result, err := s.DebtService.CompareRefinancing(ctx, debtID, refinance.Input{
		NewInterestRate: rate,
		RefinancingFees: fees,
		NewTermMonths:   optionalInt(req.NewTermMonths),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return refinanceToProto(result), nil
}

// PlanConsolidation handles the PlanConsolidation RPC
func (s *Server) PlanConsolidation(ctx context.Context, req *debtflowv1.PlanConsolidationRequest) (*debtflowv1.PlanConsolidationResponse, error) {
	debtIDs, err := parseIDs("debt_ids", req.DebtIDs)
	if err != nil {
		return nil, err
	}

	rate, err := parseDecimal("consolidated_interest_rate", req.ConsolidatedInterestRate)
	if err != nil {
		return nil, err
	}

	fees, err := parseOptionalDecimal("consolidation_fees", req.ConsolidationFees)
	if err != nil {
		return nil, err
	}

	result, err := s.DebtService.PlanConsolidation(ctx, consolidation.Input{
		DebtIDs:                  debtIDs,
		ConsolidatedInterestRate: rate,
		ConsolidatedTermMonths:   int(req.ConsolidatedTermMonths),
		ConsolidationFees:        fees,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return consolidationToProto(result), nil
}

// GetCreditUtilization handles the GetCreditUtilization RPC
func (s *Server) GetCreditUtilization(ctx context.Context, req *debtflowv1.GetCreditUtilizationRequest) (*debtflowv1.GetCreditUtilizationResponse, error) {
	result, err := s.DebtService.GetCreditUtilization(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return utilizationToProto(result), nil
}

// AnalyzeExtraPayment handles the AnalyzeExtraPayment RPC
func (s *Server) AnalyzeExtraPayment(ctx context.Context, req *debtflowv1.AnalyzeExtraPaymentRequest) (*debtflowv1.AnalyzeExtraPaymentResponse, error) {
	debtID, err := parseID("debt_id", req.DebtID)
	if err != nil {
		return nil, err
	}

	amount, err := parseDecimal("extra_payment_amount", req.ExtraPaymentAmount)
	if err != nil {
		return nil, err
	}

	// Empty as_of means today
	asOf, err := parseDate("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	result, err := s.DebtService.AnalyzeExtraPayment(ctx, debtID, extrapayment.Input{
		ExtraPaymentAmount: amount,
		NumberOfPayments:   optionalInt(req.NumberOfPayments),
		AsOf:               asOf,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return extraPaymentToProto(result), nil
}

// AnalyzeBulkExtraPayment handles the AnalyzeBulkExtraPayment RPC
func (s *Server) AnalyzeBulkExtraPayment(ctx context.Context, req *debtflowv1.AnalyzeBulkExtraPaymentRequest) (*debtflowv1.AnalyzeBulkExtraPaymentResponse, error) {
	amount, err := parseDecimal("extra_payment_amount", req.ExtraPaymentAmount)
	if err != nil {
		return nil, err
	}

	debtIDs, err := parseIDs("debt_ids", req.DebtIDs)
	if err != nil {
		return nil, err
	}

	asOf, err := parseDate("as_of", req.AsOf)
	if err != nil {
		return nil, err
	}

	result, err := s.DebtService.AnalyzeBulkExtraPayment(ctx, extrapayment.BulkInput{
		ExtraPaymentAmount: amount,
		DebtIDs:            debtIDs,
		AsOf:               asOf,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return bulkExtraPaymentToProto(result), nil
}

// CalculateLoanDetails handles the CalculateLoanDetails RPC
func (s *Server) CalculateLoanDetails(ctx context.Context, req *debtflowv1.CalculateLoanDetailsRequest) (*debtflowv1.CalculateLoanDetailsResponse, error) {
	balance, err := parseDecimal("balance", req.Balance)
	if err != nil {
		return nil, err
	}

	rate, err := parseDecimal("interest_rate", req.InterestRate)
	if err != nil {
		return nil, err
	}

	payment, err := parseDecimal("monthly_payment", req.MonthlyPayment)
	if err != nil {
		return nil, err
	}

	if req.TermMonths < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "term_months must be non-negative")
	}

	schedule, err := s.DebtService.CalculateLoanDetails(ctx, debt.LoanInput{
		Balance:        balance,
		InterestRate:   rate,
		MonthlyPayment: payment,
		TermMonths:     int(req.TermMonths),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &debtflowv1.CalculateLoanDetailsResponse{
		Details:  loanDetailsToProto(schedule.Details),
		Payments: paymentsToProto(schedule.Payments),
	}, nil
}

// GetDebtStatistics handles the GetDebtStatistics RPC
func (s *Server) GetDebtStatistics(ctx context.Context, req *debtflowv1.GetDebtStatisticsRequest) (*debtflowv1.GetDebtStatisticsResponse, error) {
	stats, err := s.DebtService.GetDebtStatistics(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return statisticsToProto(stats), nil
}

// UpdateCreditLimit handles the UpdateCreditLimit RPC
func (s *Server) UpdateCreditLimit(ctx context.Context, req *debtflowv1.UpdateCreditLimitRequest) (*debtflowv1.UpdateCreditLimitResponse, error) {
	debtID, err := parseID("debt_id", req.DebtID)
	if err != nil {
		return nil, err
	}

	limit, err := parseDecimal("credit_limit", req.CreditLimit)
	if err != nil {
		return nil, err
	}

	updated, err := s.DebtService.UpdateCreditLimit(ctx, debtID, limit)
	if err != nil {
		return nil, mapError(err)
	}

	return &debtflowv1.UpdateCreditLimitResponse{
		Debt: debtToProto(updated),
	}, nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return invalidArgument(validationErr)
	case errors.Is(err, domain.ErrInsufficientPayment):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrTermExceeded):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Error(codes.Internal, err.Error())
}

// invalidArgument attaches the offending field as a BadRequest detail
func invalidArgument(v *domain.ValidationError) error {
	st := status.New(codes.InvalidArgument, v.Error())
	if v.Field == "" {
		return st.Err()
	}

	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: v.Field, Description: v.Message},
		},
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
