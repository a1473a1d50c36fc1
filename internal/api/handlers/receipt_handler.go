package handlers

import (
	"errors"

	"receiptvision/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	logger         *zap.Logger
}

func NewReceiptHandler(receiptService *service.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// UploadReceipt godoc
// @Summary Upload a receipt
// @Description Upload a captured frame or picked invoice file (JPEG, PNG or PDF)
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Receipt file"
// @Security Bearer
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/receipts/upload [post]
func (h *ReceiptHandler) UploadReceipt(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	receipt, err := h.receiptService.Upload(c.Context(), userID, src, file.Filename)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "File must be a JPEG, PNG or PDF",
			})
		}
		h.logger.Error("Failed to upload receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload receipt",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// ProcessReceipt godoc
// @Summary Process a receipt
// @Description Extract invoice data from a stored receipt and return it with review defaults
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Security Bearer
// @Success 200 {object} dto.ProcessReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/receipts/{id}/process [post]
func (h *ReceiptHandler) ProcessReceipt(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	receiptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid receipt ID",
		})
	}

	result, err := h.receiptService.Process(c.Context(), userID, receiptID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReceiptNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Receipt not found",
			})
		case errors.Is(err, service.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Receipt belongs to another user",
			})
		case errors.Is(err, service.ErrExtraction):
			h.logger.Warn("Extraction failed", zap.Error(err))
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Failed to extract invoice data, try again",
			})
		}
		h.logger.Error("Failed to process receipt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process receipt",
		})
	}

	return c.JSON(result)
}

// ListReceipts godoc
// @Summary List user's receipts
// @Description Get a list of user's uploaded receipts
// @Tags receipts
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Security Bearer
// @Success 200 {array} dto.ReceiptResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/receipts [get]
func (h *ReceiptHandler) ListReceipts(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	limit := c.QueryInt("limit", 10)
	offset := c.QueryInt("offset", 0)

	receipts, err := h.receiptService.List(c.Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list receipts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list receipts",
		})
	}

	return c.JSON(receipts)
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
