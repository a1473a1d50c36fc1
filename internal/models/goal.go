package models

import (
	"time"

	"github.com/google/uuid"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

type FinancialGoal struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Category      string     `db:"category"`
	TargetAmount  float64    `db:"target_amount"`
	CurrentAmount float64    `db:"current_amount"`
	TargetDate    time.Time  `db:"target_date"`
	Status        GoalStatus `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
}
