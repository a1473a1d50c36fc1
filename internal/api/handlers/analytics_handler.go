package handlers

import (
	"receiptvision/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// Summary godoc
// @Summary Ledger summary
// @Description Get income and expense totals, monthly series, category spending and tips
// @Tags analytics
// @Produce json
// @Param months query int false "Months to look back" default(6)
// @Security Bearer
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	months := c.QueryInt("months", 6)

	summary, err := h.analyticsService.Summary(c.Context(), userID, months)
	if err != nil {
		h.logger.Error("Failed to build summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build summary",
		})
	}

	return c.JSON(summary)
}
