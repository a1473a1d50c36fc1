package models

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
}

// Expense is a single recorded expense transaction.
type Expense struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	CategoryID      uuid.UUID `db:"category_id"`
	Amount          float64   `db:"amount"`
	Description     string    `db:"description"`
	TransactionDate time.Time `db:"transaction_date"`
	CreatedAt       time.Time `db:"created_at"`
}
