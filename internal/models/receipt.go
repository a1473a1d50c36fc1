package models

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is an uploaded receipt or invoice image awaiting extraction.
// Nothing durable beyond the stored file is written until the reviewed
// record is committed to the ledger.
type Receipt struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	FileName  string    `db:"file_name"`
	FileSize  int64     `db:"file_size"`
	FileURL   string    `db:"file_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
