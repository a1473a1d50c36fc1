package repository

import (
	"context"

	"receiptvision/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// IncomeSourceRepository stores counterparties. The income_sources table
// carries a unique index on (user_id, name); concurrent first sightings of
// the same name surface as a unique violation the caller resolves by
// re-fetching.
type IncomeSourceRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewIncomeSourceRepository(db *pgxpool.Pool, logger *zap.Logger) *IncomeSourceRepository {
	return &IncomeSourceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *IncomeSourceRepository) Create(ctx context.Context, source *models.IncomeSource) error {
	query := squirrel.Insert("income_sources").
		Columns("id", "user_id", "name", "description", "created_at").
		Values(source.ID, source.UserID, source.Name, source.Description, source.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *IncomeSourceRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.IncomeSource, error) {
	query := squirrel.Select("id", "user_id", "name", "description", "created_at").
		From("income_sources").
		Where(squirrel.Eq{"user_id": userID, "name": name}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var source models.IncomeSource
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&source.ID, &source.UserID, &source.Name, &source.Description, &source.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &source, nil
}
