package service

import (
	"context"
	"fmt"
	"time"

	"receiptvision/internal/dto"
	"receiptvision/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalyticsService aggregates both sides of the ledger into the summary the
// dashboard renders: monthly series, per-category spending and deterministic
// tips derived from those aggregates.
type AnalyticsService struct {
	incomes  *repository.IncomeRepository
	expenses *repository.ExpenseRepository
	logger   *zap.Logger
}

func NewAnalyticsService(incomes *repository.IncomeRepository, expenses *repository.ExpenseRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		incomes:  incomes,
		expenses: expenses,
		logger:   logger,
	}
}

func (s *AnalyticsService) Summary(ctx context.Context, userID uuid.UUID, months int) (*dto.SummaryResponse, error) {
	since := monthsAgo(months)

	totalIncome, err := s.incomes.TotalSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	monthlyIncome, err := s.incomes.MonthlyTotals(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	monthlyExpenses, err := s.expenses.MonthlyTotals(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	categoryTotals, err := s.expenses.CategoryTotals(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	var totalExpenses float64
	categories := make([]dto.CategorySpend, len(categoryTotals))
	for i, ct := range categoryTotals {
		totalExpenses += ct.Total
		categories[i] = dto.CategorySpend{
			CategoryID: ct.CategoryID.String(),
			Name:       ct.Name,
			Spent:      ct.Total,
		}
	}

	return &dto.SummaryResponse{
		TotalIncome:     totalIncome,
		TotalExpenses:   totalExpenses,
		MonthlyIncome:   monthlyPoints(monthlyIncome),
		MonthlyExpenses: monthlyPoints(monthlyExpenses),
		Categories:      categories,
		Tips:            spendingTips(totalIncome, totalExpenses, categories),
	}, nil
}

func monthlyPoints(totals []repository.MonthlyTotal) []dto.MonthlyPoint {
	points := make([]dto.MonthlyPoint, len(totals))
	for i, t := range totals {
		points[i] = dto.MonthlyPoint{Month: t.Month, Amount: t.Total}
	}
	return points
}

// spendingTips derives advice from the aggregates alone, so the same ledger
// state always yields the same tips. Categories are expected sorted by spend
// descending, which CategoryTotals guarantees.
func spendingTips(totalIncome, totalExpenses float64, categories []dto.CategorySpend) []string {
	tips := []string{
		"Plan your monthly budget before the month begins",
		"Set aside emergency funds first",
	}

	if totalIncome > 0 && totalExpenses/totalIncome > 0.8 {
		tips = append(tips, "Your expenses are high relative to income. Consider reviewing non-essential spending.")
	}

	if len(categories) > 0 {
		tips = append(tips, fmt.Sprintf("Highest spending category is %s. Consider setting a lower budget for this category.", categories[0].Name))
	}

	return tips
}

// goalTips is the per-goal counterpart: a monthly savings target plus advice
// keyed on the goal category and how far along it is.
func goalTips(targetAmount, currentAmount float64, targetDate time.Time, category string, now time.Time) []string {
	var tips []string

	remaining := targetAmount - currentAmount
	monthsRemaining := int(targetDate.Sub(now).Hours()/(24*30)) + 1
	if monthsRemaining > 0 && remaining > 0 {
		tips = append(tips, fmt.Sprintf("To reach your goal, you need to save $%.2f per month.", remaining/float64(monthsRemaining)))
	}

	switch category {
	case "Emergency Fund":
		tips = append(tips,
			"Aim to have 3-6 months of living expenses saved.",
			"Keep this money in a high-yield savings account for easy access.")
	case "Retirement":
		tips = append(tips,
			"Consider maximizing your 401(k) contributions if available.",
			"Look into IRA options for additional tax advantages.")
	case "Debt Repayment":
		tips = append(tips,
			"Consider the snowball or avalanche method for debt repayment.",
			"Look into debt consolidation if you have high-interest debt.")
	default:
		tips = append(tips,
			"Set up automatic transfers to your savings account.",
			"Review and cut unnecessary expenses to reach your goal faster.")
	}

	progress := goalProgress(targetAmount, currentAmount)
	if progress < 25 {
		tips = append(tips, "You're just getting started! Stay motivated by tracking your progress regularly.")
	} else if progress >= 75 {
		tips = append(tips, "You're almost there! Consider increasing your savings rate for the final push.")
	}

	return tips
}

func goalProgress(targetAmount, currentAmount float64) float64 {
	if targetAmount <= 0 {
		return 0
	}
	return currentAmount / targetAmount * 100
}
