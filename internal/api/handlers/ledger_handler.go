package handlers

import (
	"receiptvision/internal/dto"
	"receiptvision/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	ledgerService *service.LedgerService
	logger        *zap.Logger
}

func NewLedgerHandler(ledgerService *service.LedgerService, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// ListIncome godoc
// @Summary List income records
// @Description Get the user's income records joined with source names
// @Tags ledger
// @Produce json
// @Param months query int false "Months to look back" default(6)
// @Security Bearer
// @Success 200 {array} dto.IncomeResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/income [get]
func (h *LedgerHandler) ListIncome(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	months := c.QueryInt("months", 6)

	incomes, err := h.ledgerService.ListIncome(c.Context(), userID, months)
	if err != nil {
		h.logger.Error("Failed to list income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list income",
		})
	}

	return c.JSON(incomes)
}

// CreateExpense godoc
// @Summary Record an expense
// @Description Record a manual expense under one of the seeded categories
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/expenses [post]
func (h *LedgerHandler) CreateExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := h.ledgerService.CreateExpense(c.Context(), userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(expense)
}

// ListExpenses godoc
// @Summary List expenses
// @Description Get the user's expense records
// @Tags ledger
// @Produce json
// @Param months query int false "Months to look back" default(6)
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/expenses [get]
func (h *LedgerHandler) ListExpenses(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	months := c.QueryInt("months", 6)

	expenses, err := h.ledgerService.ListExpenses(c.Context(), userID, months)
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list expenses",
		})
	}

	return c.JSON(expenses)
}

// ListCategories godoc
// @Summary List expense categories
// @Description Get the seeded expense category taxonomy
// @Tags ledger
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseCategoryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *LedgerHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.ledgerService.ListCategories(c.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list categories",
		})
	}

	return c.JSON(categories)
}
