package models

import (
	"time"

	"github.com/google/uuid"
)

// IncomeSource is the counterparty a ledger entry references, resolved by
// name. Created lazily on first sighting of a new company name for a user
// and never updated by the reconciliation flow afterwards.
type IncomeSource struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Income is a single recorded income transaction.
type Income struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	SourceID    uuid.UUID `db:"source_id"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	IncomeDate  time.Time `db:"income_date"`
	IsRecurring bool      `db:"is_recurring"`
	Frequency   string    `db:"frequency"`
	CreatedAt   time.Time `db:"created_at"`
}
