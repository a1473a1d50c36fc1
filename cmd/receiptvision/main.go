package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"receiptvision/internal/api"
	"receiptvision/internal/api/handlers"
	"receiptvision/internal/repository"
	"receiptvision/internal/service"
	"receiptvision/pkg/auth"
	"receiptvision/pkg/config"
	"receiptvision/pkg/logger"
	"receiptvision/pkg/postgres"

	"go.uber.org/zap"
)

// @title ReceiptVision API
// @version 1.0
// @description Personal finance service that turns receipt photos into ledger entries
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@receiptvision.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting ReceiptVision service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	receiptRepo := repository.NewReceiptRepository(db, appLogger)
	sourceRepo := repository.NewIncomeSourceRepository(db, appLogger)
	incomeRepo := repository.NewIncomeRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	extractionService, err := service.NewExtractionService(ctx, &cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize extraction service", zap.Error(err))
	}

	receiptService := service.NewReceiptService(receiptRepo, extractionService, cfg.Upload.Dir, appLogger)
	invoiceService := service.NewInvoiceService(sourceRepo, incomeRepo, appLogger)
	ledgerService := service.NewLedgerService(incomeRepo, expenseRepo, appLogger)
	analyticsService := service.NewAnalyticsService(incomeRepo, expenseRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	receiptHandler := handlers.NewReceiptHandler(receiptService, appLogger)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, appLogger)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, appLogger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, appLogger)
	goalHandler := handlers.NewGoalHandler(goalService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler,
		receiptHandler,
		invoiceHandler,
		ledgerHandler,
		analyticsHandler,
		goalHandler,
		jwtManager,
		cfg.Upload.Dir,
		cfg.Upload.MaxSizeMB,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
