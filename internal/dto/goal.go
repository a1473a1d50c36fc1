package dto

type GoalRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	Category      string  `json:"category" validate:"required"`
	TargetAmount  float64 `json:"target_amount" validate:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    string  `json:"target_date" validate:"required"`
}

type UpdateGoalProgressRequest struct {
	CurrentAmount float64 `json:"current_amount" validate:"gte=0"`
}

type GoalResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	TargetAmount  float64  `json:"target_amount"`
	CurrentAmount float64  `json:"current_amount"`
	TargetDate    string   `json:"target_date"`
	Status        string   `json:"status"`
	Progress      float64  `json:"progress"`
	Tips          []string `json:"tips"`
	CreatedAt     string   `json:"created_at"`
}
