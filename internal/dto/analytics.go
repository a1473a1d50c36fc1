package dto

type MonthlyPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type CategorySpend struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Spent      float64 `json:"spent"`
}

type SummaryResponse struct {
	TotalIncome     float64         `json:"total_income"`
	TotalExpenses   float64         `json:"total_expenses"`
	MonthlyIncome   []MonthlyPoint  `json:"monthly_income"`
	MonthlyExpenses []MonthlyPoint  `json:"monthly_expenses"`
	Categories      []CategorySpend `json:"categories"`
	Tips            []string        `json:"tips"`
}

type CreateExpenseRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
}

type ExpenseResponse struct {
	ID              string  `json:"id"`
	CategoryID      string  `json:"category_id"`
	CategoryName    string  `json:"category_name,omitempty"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
	CreatedAt       string  `json:"created_at"`
}

type ExpenseCategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
