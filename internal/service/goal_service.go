package service

import (
	"context"
	"fmt"
	"time"

	"receiptvision/internal/dto"
	"receiptvision/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type goalStore interface {
	Create(ctx context.Context, goal *models.FinancialGoal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FinancialGoal, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.FinancialGoal, error)
	Update(ctx context.Context, goal *models.FinancialGoal) error
	UpdateProgress(ctx context.Context, id uuid.UUID, currentAmount float64, status models.GoalStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalService struct {
	goals  goalStore
	logger *zap.Logger
}

func NewGoalService(goals goalStore, logger *zap.Logger) *GoalService {
	return &GoalService{
		goals:  goals,
		logger: logger,
	}
}

func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("target_date must be a valid calendar date (YYYY-MM-DD)")
	}
	if req.TargetAmount <= 0 {
		return nil, fmt.Errorf("target_amount must be positive")
	}

	goal := &models.FinancialGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         sanitizeUTF8(req.Title),
		Description:   sanitizeUTF8(req.Description),
		Category:      req.Category,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    targetDate,
		Status:        goalStatusFor(req.CurrentAmount, req.TargetAmount),
		CreatedAt:     time.Now(),
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goalToDTO(goal), nil
}

func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]*dto.GoalResponse, error) {
	goals, err := s.goals.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = goalToDTO(goal)
	}

	return responses, nil
}

func (s *GoalService) Update(ctx context.Context, userID, goalID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("target_date must be a valid calendar date (YYYY-MM-DD)")
	}
	if req.TargetAmount <= 0 {
		return nil, fmt.Errorf("target_amount must be positive")
	}

	goal.Title = sanitizeUTF8(req.Title)
	goal.Description = sanitizeUTF8(req.Description)
	goal.Category = req.Category
	goal.TargetAmount = req.TargetAmount
	goal.CurrentAmount = req.CurrentAmount
	goal.TargetDate = targetDate
	goal.Status = goalStatusFor(goal.CurrentAmount, goal.TargetAmount)

	if err := s.goals.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goalToDTO(goal), nil
}

func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID uuid.UUID, currentAmount float64) (*dto.GoalResponse, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if currentAmount < 0 {
		return nil, fmt.Errorf("current_amount must be non-negative")
	}

	goal.CurrentAmount = currentAmount
	goal.Status = goalStatusFor(goal.CurrentAmount, goal.TargetAmount)

	if err := s.goals.UpdateProgress(ctx, goal.ID, goal.CurrentAmount, goal.Status); err != nil {
		return nil, err
	}

	return goalToDTO(goal), nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	if _, err := s.ownedGoal(ctx, userID, goalID); err != nil {
		return err
	}
	return s.goals.Delete(ctx, goalID)
}

func (s *GoalService) ownedGoal(ctx context.Context, userID, goalID uuid.UUID) (*models.FinancialGoal, error) {
	goal, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, ErrGoalNotFound
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	return goal, nil
}

func goalStatusFor(currentAmount, targetAmount float64) models.GoalStatus {
	if targetAmount > 0 && currentAmount >= targetAmount {
		return models.GoalStatusCompleted
	}
	return models.GoalStatusActive
}

func goalToDTO(goal *models.FinancialGoal) *dto.GoalResponse {
	return &dto.GoalResponse{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		Description:   goal.Description,
		Category:      goal.Category,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate.Format("2006-01-02"),
		Status:        string(goal.Status),
		Progress:      goalProgress(goal.TargetAmount, goal.CurrentAmount),
		Tips:          goalTips(goal.TargetAmount, goal.CurrentAmount, goal.TargetDate, goal.Category, time.Now()),
		CreatedAt:     goal.CreatedAt.Format(time.RFC3339),
	}
}
