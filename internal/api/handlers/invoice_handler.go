package handlers

import (
	"errors"

	"receiptvision/internal/dto"
	"receiptvision/internal/invoice"
	"receiptvision/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	logger         *zap.Logger
}

func NewInvoiceHandler(invoiceService *service.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// CommitInvoice godoc
// @Summary Commit a reviewed invoice
// @Description Validate the edited invoice fields and write them to the ledger as income
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body dto.CommitInvoiceRequest true "Reviewed invoice"
// @Security Bearer
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /api/v1/invoices/commit [post]
func (h *InvoiceHandler) CommitInvoice(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CommitInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	rec, err := invoice.Review(invoice.ReviewForm{
		InvoiceNumber: req.InvoiceNumber,
		Company:       req.Company,
		Customer:      req.Customer,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		IsRecurring:   req.IsRecurring,
		Frequency:     req.Frequency,
	})
	if err != nil {
		var vErr *invoice.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": vErr.Fields,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid invoice data",
		})
	}

	income, err := h.invoiceService.Commit(c.Context(), userID, rec)
	if err != nil {
		h.logger.Error("Failed to commit invoice", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to commit invoice",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(income)
}
