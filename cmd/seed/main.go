package main

import (
	"context"
	"log"

	"receiptvision/internal/invoice"
	"receiptvision/internal/models"
	"receiptvision/internal/repository"
	"receiptvision/pkg/config"
	"receiptvision/pkg/logger"
	"receiptvision/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds the expense_categories table from the extraction taxonomy. Safe to
// run repeatedly: rows already present by name are left untouched.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	expenseRepo := repository.NewExpenseRepository(db, appLogger)

	for _, c := range invoice.Taxonomy {
		cat := &models.ExpenseCategory{
			ID:          uuid.New(),
			Name:        c.Name,
			Description: c.Items,
		}
		if err := expenseRepo.UpsertCategory(ctx, cat); err != nil {
			appLogger.Fatal("Failed to seed category",
				zap.String("name", c.Name),
				zap.Error(err),
			)
		}
		appLogger.Info("Seeded category", zap.String("name", c.Name))
	}

	appLogger.Info("Category seeding complete", zap.Int("count", len(invoice.Taxonomy)))
}
