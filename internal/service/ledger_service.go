package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"receiptvision/internal/dto"
	"receiptvision/internal/models"
	"receiptvision/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService covers the manual side of the ledger: income listing and
// expense entry against the seeded category taxonomy.
type LedgerService struct {
	incomes  *repository.IncomeRepository
	expenses *repository.ExpenseRepository
	logger   *zap.Logger
}

func NewLedgerService(incomes *repository.IncomeRepository, expenses *repository.ExpenseRepository, logger *zap.Logger) *LedgerService {
	return &LedgerService{
		incomes:  incomes,
		expenses: expenses,
		logger:   logger,
	}
}

func (s *LedgerService) ListIncome(ctx context.Context, userID uuid.UUID, months int) ([]*dto.IncomeResponse, error) {
	since := monthsAgo(months)
	incomes, err := s.incomes.ListByUserID(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.IncomeResponse, len(incomes))
	for i, inc := range incomes {
		responses[i] = &dto.IncomeResponse{
			ID:          inc.ID.String(),
			SourceID:    inc.SourceID.String(),
			SourceName:  inc.SourceName,
			Amount:      inc.Amount,
			Description: inc.Description,
			IncomeDate:  inc.IncomeDate.Format("2006-01-02"),
			IsRecurring: inc.IsRecurring,
			Frequency:   inc.Frequency,
			CreatedAt:   inc.CreatedAt.Format(time.RFC3339),
		}
	}

	return responses, nil
}

func (s *LedgerService) CreateExpense(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id: %w", err)
	}

	category, err := s.expenses.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("category not found: %w", err)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	if err != nil || amount < 0 {
		return nil, fmt.Errorf("amount must be a non-negative number")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("date must be a valid calendar date (YYYY-MM-DD)")
	}

	expense := &models.Expense{
		ID:              uuid.New(),
		UserID:          userID,
		CategoryID:      category.ID,
		Amount:          amount,
		Description:     sanitizeUTF8(req.Description),
		TransactionDate: date,
		CreatedAt:       time.Now(),
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}

	return &dto.ExpenseResponse{
		ID:              expense.ID.String(),
		CategoryID:      category.ID.String(),
		CategoryName:    category.Name,
		Amount:          expense.Amount,
		Description:     expense.Description,
		TransactionDate: expense.TransactionDate.Format("2006-01-02"),
		CreatedAt:       expense.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *LedgerService) ListExpenses(ctx context.Context, userID uuid.UUID, months int) ([]*dto.ExpenseResponse, error) {
	since := monthsAgo(months)
	expenses, err := s.expenses.ListByUserID(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = &dto.ExpenseResponse{
			ID:              e.ID.String(),
			CategoryID:      e.CategoryID.String(),
			Amount:          e.Amount,
			Description:     e.Description,
			TransactionDate: e.TransactionDate.Format("2006-01-02"),
			CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		}
	}

	return responses, nil
}

func (s *LedgerService) ListCategories(ctx context.Context) ([]*dto.ExpenseCategoryResponse, error) {
	categories, err := s.expenses.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ExpenseCategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = &dto.ExpenseCategoryResponse{
			ID:          cat.ID.String(),
			Name:        cat.Name,
			Description: cat.Description,
		}
	}

	return responses, nil
}

func monthsAgo(months int) time.Time {
	if months <= 0 {
		months = 6
	}
	return time.Now().AddDate(0, -months, 0)
}
