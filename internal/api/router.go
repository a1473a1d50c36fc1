package api

import (
	"receiptvision/docs"
	"receiptvision/internal/api/handlers"
	"receiptvision/pkg/auth"
	"receiptvision/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	receiptHandler *handlers.ReceiptHandler,
	invoiceHandler *handlers.InvoiceHandler,
	ledgerHandler *handlers.LedgerHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	goalHandler *handlers.GoalHandler,
	jwtManager *auth.JWTManager,
	uploadDir string,
	maxUploadMB int,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: maxUploadMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger
	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Stored receipt files
	app.Static("/uploads", uploadDir)

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	receipts := protected.Group("/receipts")
	receipts.Post("/upload", receiptHandler.UploadReceipt)
	receipts.Get("", receiptHandler.ListReceipts)
	receipts.Post("/:id/process", receiptHandler.ProcessReceipt)

	invoices := protected.Group("/invoices")
	invoices.Post("/commit", invoiceHandler.CommitInvoice)

	protected.Get("/income", ledgerHandler.ListIncome)
	protected.Post("/expenses", ledgerHandler.CreateExpense)
	protected.Get("/expenses", ledgerHandler.ListExpenses)
	protected.Get("/categories", ledgerHandler.ListCategories)

	protected.Get("/analytics/summary", analyticsHandler.Summary)

	goals := protected.Group("/goals")
	goals.Post("", goalHandler.CreateGoal)
	goals.Get("", goalHandler.ListGoals)
	goals.Put("/:id", goalHandler.UpdateGoal)
	goals.Patch("/:id/progress", goalHandler.UpdateGoalProgress)
	goals.Delete("/:id", goalHandler.DeleteGoal)

	return app
}
