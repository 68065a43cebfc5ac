package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcadapter "github.com/simaogato/debtflow-backend/internal/adapter/grpc"
	debtflowv1 "github.com/simaogato/debtflow-backend/internal/adapter/grpc/debtflow/v1"
	"github.com/simaogato/debtflow-backend/internal/adapter/repository/memory"
	"github.com/simaogato/debtflow-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/debtflow-backend/internal/adapter/repository/sqlite"
	"github.com/simaogato/debtflow-backend/internal/config"
	"github.com/simaogato/debtflow-backend/internal/domain"
	applog "github.com/simaogato/debtflow-backend/internal/log"
	"github.com/simaogato/debtflow-backend/internal/portfolio"
	"github.com/simaogato/debtflow-backend/internal/usecase/debt"
	"github.com/simaogato/debtflow-backend/internal/usecase/seeder"
)

// Postgres may still be starting when the server container comes up
const (
	postgresAttempts = 5
	postgresBackoff  = 2 * time.Second
)

// openStorage is swapped in tests
var openStorage = openRepository

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred closes happen before main exits
func run() error {
	// 1. Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: applog.ComponentApp,
		Output:    os.Stdout,
	})
	applog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Storage
	repo, closer, err := openStorage(ctx, cfg, logger.WithComponent(applog.ComponentStorage))
	if err != nil {
		logger.Error("Failed to initialize storage", applog.FieldBackend, cfg.DataBackend, applog.FieldError, err)
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.DataBackend, err)
	}
	defer closer.Close()

	if cfg.SeedFile != "" {
		if err := seed(ctx, repo, cfg.SeedFile, logger); err != nil {
			logger.Error("Failed to seed debts", "file", cfg.SeedFile, applog.FieldError, err)
			return fmt.Errorf("failed to seed debts from %s: %w", cfg.SeedFile, err)
		}
	}

	// 3. Services
	debtService := debt.NewService(repo)

	// 4. gRPC server
	grpcServer, healthServer := grpcadapter.NewGRPCServer(debtService, cfg.APIToken, logger)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("Failed to listen", applog.FieldAddr, cfg.GRPCAddr, applog.FieldError, err)
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server listening",
			applog.FieldOperation, applog.OpStartup,
			applog.FieldAddr, lis.Addr().String(),
			applog.FieldBackend, cfg.DataBackend,
		)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down gracefully", applog.FieldOperation, applog.OpShutdown)
		healthServer.SetServingStatus(debtflowv1.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		shutdown(grpcServer, cfg.ShutdownTimeout, logger)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
		logger.Error("gRPC server failed", applog.FieldError, err)
		return fmt.Errorf("gRPC server failed: %w", err)
	}
	logger.Info("gRPC server stopped")
	return nil
}

// openRepository builds the debt repository for the configured backend
func openRepository(ctx context.Context, cfg *config.Config, logger *applog.Logger) (domain.DebtRepository, io.Closer, error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		db, err := sqlite.NewDB(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Initialized SQLite backend", "path", cfg.SQLiteDBPath)
		return sqlite.NewDebtRepository(db), db, nil

	case config.BackendPostgres:
		db, err := connectPostgres(ctx, cfg.PostgresDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Initialized Postgres backend")
		return postgres.NewDebtRepository(db), db, nil

	default:
		logger.Info("Initialized memory backend")
		return memory.NewDebtRepository(), io.NopCloser(nil), nil
	}
}

// seed loads the portfolio at path and stores the debts not yet present
func seed(ctx context.Context, repo domain.DebtRepository, path string, logger *applog.Logger) error {
	debts, err := portfolio.DecodeFile(path)
	if err != nil {
		return err
	}
	created, err := seeder.NewDebtSeeder(repo).Seed(ctx, debts)
	if err != nil {
		return err
	}
	logger.Info("Debts seeded", "file", path, "created", created, "total", len(debts))
	return nil
}

// connectPostgres migrates and connects, retrying while the database comes up
func connectPostgres(ctx context.Context, dsn string, logger *applog.Logger) (*postgres.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= postgresAttempts; attempt++ {
		if lastErr = postgres.Migrate(dsn); lastErr == nil {
			return postgres.NewDB(dsn)
		}
		logger.Warn("Postgres not ready",
			applog.FieldOperation, applog.OpMigrate,
			"attempt", attempt,
			applog.FieldError, lastErr,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(postgresBackoff):
		}
	}
	return nil, fmt.Errorf("postgres unavailable after %d attempts: %w", postgresAttempts, lastErr)
}

// shutdown drains in-flight RPCs, forcing a stop once timeout elapses
func shutdown(server *grpclib.Server, timeout time.Duration, logger *applog.Logger) {
	done := make(chan struct{})
	go func() {
		server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		logger.Warn("Graceful stop timed out, forcing shutdown", applog.FieldDuration, timeout.Milliseconds())
		server.Stop()
	}
}
