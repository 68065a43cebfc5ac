package debtflowv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "debtflow.v1.DebtFlowService"

// Full method names
const (
	CalculatePayoffMethod         = "/" + ServiceName + "/CalculatePayoff"
	CompareRefinancingMethod      = "/" + ServiceName + "/CompareRefinancing"
	PlanConsolidationMethod       = "/" + ServiceName + "/PlanConsolidation"
	GetCreditUtilizationMethod    = "/" + ServiceName + "/GetCreditUtilization"
	AnalyzeExtraPaymentMethod     = "/" + ServiceName + "/AnalyzeExtraPayment"
	AnalyzeBulkExtraPaymentMethod = "/" + ServiceName + "/AnalyzeBulkExtraPayment"
	CalculateLoanDetailsMethod    = "/" + ServiceName + "/CalculateLoanDetails"
	GetDebtStatisticsMethod       = "/" + ServiceName + "/GetDebtStatistics"
	UpdateCreditLimitMethod       = "/" + ServiceName + "/UpdateCreditLimit"
)

// DebtFlowServiceServer is the server API for DebtFlowService
type DebtFlowServiceServer interface {
	CalculatePayoff(context.Context, *CalculatePayoffRequest) (*CalculatePayoffResponse, error)
	CompareRefinancing(context.Context, *CompareRefinancingRequest) (*CompareRefinancingResponse, error)
	PlanConsolidation(context.Context, *PlanConsolidationRequest) (*PlanConsolidationResponse, error)
	GetCreditUtilization(context.Context, *GetCreditUtilizationRequest) (*GetCreditUtilizationResponse, error)
	AnalyzeExtraPayment(context.Context, *AnalyzeExtraPaymentRequest) (*AnalyzeExtraPaymentResponse, error)
	AnalyzeBulkExtraPayment(context.Context, *AnalyzeBulkExtraPaymentRequest) (*AnalyzeBulkExtraPaymentResponse, error)
	CalculateLoanDetails(context.Context, *CalculateLoanDetailsRequest) (*CalculateLoanDetailsResponse, error)
	GetDebtStatistics(context.Context, *GetDebtStatisticsRequest) (*GetDebtStatisticsResponse, error)
	UpdateCreditLimit(context.Context, *UpdateCreditLimitRequest) (*UpdateCreditLimitResponse, error)
}

// UnimplementedDebtFlowServiceServer can be embedded to keep servers
// compiling when methods are added
type UnimplementedDebtFlowServiceServer struct{}

func (UnimplementedDebtFlowServiceServer) CalculatePayoff(context.Context, *CalculatePayoffRequest) (*CalculatePayoffResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CalculatePayoff not implemented")
}

func (UnimplementedDebtFlowServiceServer) CompareRefinancing(context.Context, *CompareRefinancingRequest) (*CompareRefinancingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompareRefinancing not implemented")
}

func (UnimplementedDebtFlowServiceServer) PlanConsolidation(context.Context, *PlanConsolidationRequest) (*PlanConsolidationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlanConsolidation not implemented")
}

func (UnimplementedDebtFlowServiceServer) GetCreditUtilization(context.Context, *GetCreditUtilizationRequest) (*GetCreditUtilizationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCreditUtilization not implemented")
}

func (UnimplementedDebtFlowServiceServer) AnalyzeExtraPayment(context.Context, *AnalyzeExtraPaymentRequest) (*AnalyzeExtraPaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeExtraPayment not implemented")
}

func (UnimplementedDebtFlowServiceServer) AnalyzeBulkExtraPayment(context.Context, *AnalyzeBulkExtraPaymentRequest) (*AnalyzeBulkExtraPaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeBulkExtraPayment not implemented")
}

func (UnimplementedDebtFlowServiceServer) CalculateLoanDetails(context.Context, *CalculateLoanDetailsRequest) (*CalculateLoanDetailsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CalculateLoanDetails not implemented")
}

func (UnimplementedDebtFlowServiceServer) GetDebtStatistics(context.Context, *GetDebtStatisticsRequest) (*GetDebtStatisticsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDebtStatistics not implemented")
}

func (UnimplementedDebtFlowServiceServer) UpdateCreditLimit(context.Context, *UpdateCreditLimitRequest) (*UpdateCreditLimitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateCreditLimit not implemented")
}

// RegisterDebtFlowServiceServer registers srv on s
func RegisterDebtFlowServiceServer(s grpc.ServiceRegistrar, srv DebtFlowServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to the grpc method handler shape
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(DebtFlowServiceServer, context.Context, *Req) (*Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(DebtFlowServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(DebtFlowServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for DebtFlowService
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DebtFlowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CalculatePayoff",
			Handler:    unaryHandler(CalculatePayoffMethod, DebtFlowServiceServer.CalculatePayoff),
		},
		{
			MethodName: "CompareRefinancing",
			Handler:    unaryHandler(CompareRefinancingMethod, DebtFlowServiceServer.CompareRefinancing),
		},
		{
			MethodName: "PlanConsolidation",
			Handler:    unaryHandler(PlanConsolidationMethod, DebtFlowServiceServer.PlanConsolidation),
		},
		{
			MethodName: "GetCreditUtilization",
			Handler:    unaryHandler(GetCreditUtilizationMethod, DebtFlowServiceServer.GetCreditUtilization),
		},
		{
			MethodName: "AnalyzeExtraPayment",
			Handler:    unaryHandler(AnalyzeExtraPaymentMethod, DebtFlowServiceServer.AnalyzeExtraPayment),
		},
		{
			MethodName: "AnalyzeBulkExtraPayment",
			Handler:    unaryHandler(AnalyzeBulkExtraPaymentMethod, DebtFlowServiceServer.AnalyzeBulkExtraPayment),
		},
		{
			MethodName: "CalculateLoanDetails",
			Handler:    unaryHandler(CalculateLoanDetailsMethod, DebtFlowServiceServer.CalculateLoanDetails),
		},
		{
			MethodName: "GetDebtStatistics",
			Handler:    unaryHandler(GetDebtStatisticsMethod, DebtFlowServiceServer.GetDebtStatistics),
		},
		{
			MethodName: "UpdateCreditLimit",
			Handler:    unaryHandler(UpdateCreditLimitMethod, DebtFlowServiceServer.UpdateCreditLimit),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "debtflow/v1/debtflow.json",
}

// DebtFlowServiceClient is the client API for DebtFlowService
type DebtFlowServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDebtFlowServiceClient creates a client that speaks the JSON codec over cc
func NewDebtFlowServiceClient(cc grpc.ClientConnInterface) *DebtFlowServiceClient {
	return &DebtFlowServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DebtFlowServiceClient) CalculatePayoff(ctx context.Context, in *CalculatePayoffRequest, opts ...grpc.CallOption) (*CalculatePayoffResponse, error) {
	return invoke[CalculatePayoffResponse](ctx, c.cc, CalculatePayoffMethod, in, opts)
}

func (c *DebtFlowServiceClient) CompareRefinancing(ctx context.Context, in *CompareRefinancingRequest, opts ...grpc.CallOption) (*CompareRefinancingResponse, error) {
	return invoke[CompareRefinancingResponse](ctx, c.cc, CompareRefinancingMethod, in, opts)
}

func (c *DebtFlowServiceClient) PlanConsolidation(ctx context.Context, in *PlanConsolidationRequest, opts ...grpc.CallOption) (*PlanConsolidationResponse, error) {
	return invoke[PlanConsolidationResponse](ctx, c.cc, PlanConsolidationMethod, in, opts)
}

func (c *DebtFlowServiceClient) GetCreditUtilization(ctx context.Context, in *GetCreditUtilizationRequest, opts ...grpc.CallOption) (*GetCreditUtilizationResponse, error) {
	return invoke[GetCreditUtilizationResponse](ctx, c.cc, GetCreditUtilizationMethod, in, opts)
}

func (c *DebtFlowServiceClient) AnalyzeExtraPayment(ctx context.Context, in *AnalyzeExtraPaymentRequest, opts ...grpc.CallOption) (*AnalyzeExtraPaymentResponse, error) {
	return invoke[AnalyzeExtraPaymentResponse](ctx, c.cc, AnalyzeExtraPaymentMethod, in, opts)
}

func (c *DebtFlowServiceClient) AnalyzeBulkExtraPayment(ctx context.Context, in *AnalyzeBulkExtraPaymentRequest, opts ...grpc.CallOption) (*AnalyzeBulkExtraPaymentResponse, error) {
	return invoke[AnalyzeBulkExtraPaymentResponse](ctx, c.cc, AnalyzeBulkExtraPaymentMethod, in, opts)
}

func (c *DebtFlowServiceClient) CalculateLoanDetails(ctx context.Context, in *CalculateLoanDetailsRequest, opts ...grpc.CallOption) (*CalculateLoanDetailsResponse, error) {
	return invoke[CalculateLoanDetailsResponse](ctx, c.cc, CalculateLoanDetailsMethod, in, opts)
}

func (c *DebtFlowServiceClient) GetDebtStatistics(ctx context.Context, in *GetDebtStatisticsRequest, opts ...grpc.CallOption) (*GetDebtStatisticsResponse, error) {
	return invoke[GetDebtStatisticsResponse](ctx, c.cc, GetDebtStatisticsMethod, in, opts)
}

func (c *DebtFlowServiceClient) UpdateCreditLimit(ctx context.Context, in *UpdateCreditLimitRequest, opts ...grpc.CallOption) (*UpdateCreditLimitResponse, error) {
	return invoke[UpdateCreditLimitResponse](ctx, c.cc, UpdateCreditLimitMethod, in, opts)
}
