package service

import (
	"strings"
	"testing"
	"time"

	"receiptvision/internal/dto"
)

func TestSpendingTips_BaselineAlwaysPresent(t *testing.T) {
	tips := spendingTips(0, 0, nil)
	if len(tips) != 2 {
		t.Fatalf("got %d tips, want 2 baseline tips", len(tips))
	}
	if !strings.Contains(tips[0], "budget") {
		t.Errorf("tips[0] = %q, want budget planning tip", tips[0])
	}
}

func TestSpendingTips_HighSpendingRatio(t *testing.T) {
	// 90% of income spent triggers the warning, 50% does not.
	tips := spendingTips(1000, 900, nil)
	if !containsTip(tips, "expenses are high relative to income") {
		t.Errorf("tips = %v, want high-spending warning", tips)
	}

	tips = spendingTips(1000, 500, nil)
	if containsTip(tips, "expenses are high relative to income") {
		t.Errorf("tips = %v, should not warn at 50%% spending", tips)
	}

	// Zero income never divides.
	tips = spendingTips(0, 500, nil)
	if containsTip(tips, "expenses are high relative to income") {
		t.Errorf("tips = %v, should not warn with no income", tips)
	}
}

func TestSpendingTips_NamesTopCategory(t *testing.T) {
	categories := []dto.CategorySpend{
		{Name: "Groceries & Food", Spent: 400},
		{Name: "Transportation", Spent: 100},
	}
	tips := spendingTips(1000, 500, categories)
	if !containsTip(tips, "Highest spending category is Groceries & Food") {
		t.Errorf("tips = %v, want top-category tip", tips)
	}
}

func TestGoalTips_MonthlySavingsTarget(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	target := now.AddDate(0, 10, 0)

	tips := goalTips(1000, 0, target, "Vacation", now)
	if !containsTip(tips, "per month") {
		t.Errorf("tips = %v, want monthly savings target", tips)
	}

	// A reached goal gets no savings target.
	tips = goalTips(1000, 1000, target, "Vacation", now)
	if containsTip(tips, "per month") {
		t.Errorf("tips = %v, reached goal should not get a savings target", tips)
	}
}

func TestGoalTips_CategoryAdvice(t *testing.T) {
	now := time.Now()
	target := now.AddDate(1, 0, 0)

	tests := []struct {
		category string
		want     string
	}{
		{"Emergency Fund", "3-6 months of living expenses"},
		{"Retirement", "401(k)"},
		{"Debt Repayment", "snowball or avalanche"},
		{"Vacation", "automatic transfers"},
	}

	for _, tt := range tests {
		tips := goalTips(1000, 500, target, tt.category, now)
		if !containsTip(tips, tt.want) {
			t.Errorf("goalTips(%q) = %v, want tip containing %q", tt.category, tips, tt.want)
		}
	}
}

func TestGoalTips_ProgressAdvice(t *testing.T) {
	now := time.Now()
	target := now.AddDate(1, 0, 0)

	tips := goalTips(1000, 100, target, "Vacation", now)
	if !containsTip(tips, "just getting started") {
		t.Errorf("tips at 10%% = %v, want starter encouragement", tips)
	}

	tips = goalTips(1000, 800, target, "Vacation", now)
	if !containsTip(tips, "almost there") {
		t.Errorf("tips at 80%% = %v, want final-push encouragement", tips)
	}

	tips = goalTips(1000, 500, target, "Vacation", now)
	if containsTip(tips, "just getting started") || containsTip(tips, "almost there") {
		t.Errorf("tips at 50%% = %v, want no progress advice", tips)
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		target, current, want float64
	}{
		{1000, 250, 25},
		{1000, 0, 0},
		{1000, 1500, 150},
		{0, 100, 0},
	}

	for _, tt := range tests {
		if got := goalProgress(tt.target, tt.current); got != tt.want {
			t.Errorf("goalProgress(%v, %v) = %v, want %v", tt.target, tt.current, got, tt.want)
		}
	}
}

func containsTip(tips []string, substr string) bool {
	for _, tip := range tips {
		if strings.Contains(tip, substr) {
			return true
		}
	}
	return false
}
