package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bhaveshhptl/credit-approval-system/internal/application/usecase"
	"github.com/bhaveshhptl/credit-approval-system/internal/domain/service"
	"github.com/bhaveshhptl/credit-approval-system/internal/infrastructure/config"
	"github.com/bhaveshhptl/credit-approval-system/internal/infrastructure/messaging"
	pgRepo "github.com/bhaveshhptl/credit-approval-system/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/bhaveshhptl/credit-approval-system/internal/presentation/grpc"
	"github.com/bhaveshhptl/credit-approval-system/internal/presentation/rest"
	pkgkafka "github.com/bhaveshhptl/credit-approval-system/pkg/kafka"
	"github.com/bhaveshhptl/credit-approval-system/pkg/observability"
	pkgpostgres "github.com/bhaveshhptl/credit-approval-system/pkg/postgres"
)

const eventsTopic = "credit-events"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  "info",
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting credit-approval-system",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Metrics exporter; the handler is served on the HTTP port.
	_, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
		Port:        cfg.HTTPPort,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without them", "error", err)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	migDSN := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}.DSN()
	if migErr := pkgpostgres.RunMigrations(migDSN, "file://internal/infrastructure/persistence/postgres/migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	customerRepo := pgRepo.NewCustomerRepo(pool)
	loanRepo := pgRepo.NewLoanRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, eventsTopic, logger)
	engine := service.NewDecisionEngine()

	// Wire use cases.
	registerUC := usecase.NewRegisterCustomerUseCase(customerRepo, publisher)
	eligibilityUC := usecase.NewCheckEligibilityUseCase(customerRepo, loanRepo, engine)
	createLoanUC := usecase.NewCreateLoanUseCase(customerRepo, loanRepo, engine, publisher)
	getLoanUC := usecase.NewGetLoanUseCase(customerRepo, loanRepo)
	listLoansUC := usecase.NewListCustomerLoansUseCase(customerRepo, loanRepo)
	recordEMIUC := usecase.NewRecordEMIPaymentUseCase(loanRepo, publisher)

	// gRPC server.
	handler := grpcPresentation.NewCreditHandler(
		registerUC, eligibilityUC, createLoanUC, getLoanUC, listLoansUC, recordEMIUC,
		logger)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-approval-system stopped")
}
