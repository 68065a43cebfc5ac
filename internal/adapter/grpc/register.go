package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	debtflowv1 "github.com/simaogato/debtflow-backend/internal/adapter/grpc/debtflow/v1"
	applog "github.com/simaogato/debtflow-backend/internal/log"
	"github.com/simaogato/debtflow-backend/internal/usecase/debt"
)

// NewGRPCServer builds a gRPC server carrying DebtFlowService and the standard
// health service. Health checks bypass authentication.
func NewGRPCServer(debtService *debt.Service, apiToken string, logger *applog.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	grpcLogger := logger.WithComponent(applog.ComponentGRPC)

	opts = append(opts, grpc.ChainUnaryInterceptor(
		RecoveryInterceptor(grpcLogger),
		LoggingInterceptor(grpcLogger),
		AuthInterceptor(apiToken, healthpb.Health_Check_FullMethodName),
	))
	grpcServer := grpc.NewServer(opts...)

	debtflowv1.RegisterDebtFlowServiceServer(grpcServer, NewServer(debtService))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(debtflowv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	return grpcServer, healthServer
}
