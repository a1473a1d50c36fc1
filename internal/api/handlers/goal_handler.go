package handlers

import (
	"errors"

	"receiptvision/internal/dto"
	"receiptvision/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// CreateGoal godoc
// @Summary Create a financial goal
// @Description Create a savings goal with a target amount and date
// @Tags goals
// @Accept json
// @Produce json
// @Param request body dto.GoalRequest true "Goal"
// @Security Bearer
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/goals [post]
func (h *GoalHandler) CreateGoal(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Create(c.Context(), userID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

// ListGoals godoc
// @Summary List financial goals
// @Description Get the user's goals with progress and tips
// @Tags goals
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.GoalResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/goals [get]
func (h *GoalHandler) ListGoals(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	goals, err := h.goalService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list goals", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list goals",
		})
	}

	return c.JSON(goals)
}

// UpdateGoal godoc
// @Summary Update a financial goal
// @Description Replace a goal's fields
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.GoalRequest true "Goal"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.Update(c.Context(), userID, goalID, &req)
	if err != nil {
		return h.goalError(c, err)
	}

	return c.JSON(goal)
}

// UpdateGoalProgress godoc
// @Summary Update goal progress
// @Description Set the amount saved toward a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.UpdateGoalProgressRequest true "Progress"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id}/progress [patch]
func (h *GoalHandler) UpdateGoalProgress(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	var req dto.UpdateGoalProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goalService.UpdateProgress(c.Context(), userID, goalID, req.CurrentAmount)
	if err != nil {
		return h.goalError(c, err)
	}

	return c.JSON(goal)
}

// DeleteGoal godoc
// @Summary Delete a financial goal
// @Description Delete one of the user's goals
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Security Bearer
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}

	if err := h.goalService.Delete(c.Context(), userID, goalID); err != nil {
		return h.goalError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GoalHandler) goalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Goal belongs to another user",
		})
	}
	h.logger.Error("Goal operation failed", zap.Error(err))
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
