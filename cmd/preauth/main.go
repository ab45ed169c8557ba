package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tecodan/sharetribe/internal/pkg/config"
	"github.com/tecodan/sharetribe/internal/pkg/database"
	"github.com/tecodan/sharetribe/internal/pkg/health"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/middleware"
	natspkg "github.com/tecodan/sharetribe/internal/pkg/nats"
	"github.com/tecodan/sharetribe/internal/pkg/server"
	"github.com/tecodan/sharetribe/services/preauth/gateway"
	"github.com/tecodan/sharetribe/services/preauth/gateway/payment"
	"github.com/tecodan/sharetribe/services/preauth/handler"
	httpHandler "github.com/tecodan/sharetribe/services/preauth/handler/http"
	natsHandler "github.com/tecodan/sharetribe/services/preauth/handler/nats"
	"github.com/tecodan/sharetribe/services/preauth/repository"
	"github.com/tecodan/sharetribe/services/preauth/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "preauth-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/preauth.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	transactionRepo := repository.NewTransactionRepo(postgresClient.GetDB())

	// Initialize gateways
	paymentTimeout := time.Duration(configs.Payment.TimeoutSeconds) * time.Second
	gatewayRegistry := payment.NewRegistry(
		payment.NewStripeGateway(configs.Payment.StripeURL, paymentTimeout),
		payment.NewBraintreeGateway(configs.Payment.BraintreeURL, paymentTimeout),
	)
	reservationGW := gateway.NewReservationGW(configs.Reservation)
	workerGW := gateway.NewWorkerGW(natsClient, redisClient)

	// Initialize UseCase
	preauthUC := usecase.NewPreauthUC(configs, transactionRepo, gatewayRegistry, reservationGW, workerGW)

	// Handlers for NATS worker jobs
	jobHandler, err := natsHandler.NewHandler(preauthUC, workerGW, natsClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	defer jobHandler.Close()

	// Handlers for HTTP
	preauthHandler := httpHandler.NewPreauthHandler(preauthUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	handler.RegisterRoutes(e, preauthHandler)

	// Start server with graceful shutdown
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
	}
}
