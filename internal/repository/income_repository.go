package repository

import (
	"context"
	"time"

	"receiptvision/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// MonthlyTotal is one YYYY-MM bucket of summed amounts.
type MonthlyTotal struct {
	Month string
	Total float64
}

// IncomeWithSource is an income row joined with its counterparty name.
type IncomeWithSource struct {
	models.Income
	SourceName string
}

type IncomeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewIncomeRepository(db *pgxpool.Pool, logger *zap.Logger) *IncomeRepository {
	return &IncomeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *IncomeRepository) Create(ctx context.Context, income *models.Income) error {
	query := squirrel.Insert("income").
		Columns("id", "user_id", "source_id", "amount", "description", "income_date", "is_recurring", "frequency", "created_at").
		Values(income.ID, income.UserID, income.SourceID, income.Amount, income.Description, income.IncomeDate, income.IsRecurring, income.Frequency, income.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *IncomeRepository) ListByUserID(ctx context.Context, userID uuid.UUID, since time.Time) ([]*IncomeWithSource, error) {
	query := squirrel.Select(
		"i.id", "i.user_id", "i.source_id", "i.amount", "i.description",
		"i.income_date", "i.is_recurring", "i.frequency", "i.created_at", "s.name").
		From("income i").
		Join("income_sources s ON s.id = i.source_id").
		Where(squirrel.Eq{"i.user_id": userID}).
		Where(squirrel.GtOrEq{"i.income_date": since}).
		OrderBy("i.income_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []*IncomeWithSource
	for rows.Next() {
		var inc IncomeWithSource
		if err := rows.Scan(
			&inc.ID, &inc.UserID, &inc.SourceID, &inc.Amount, &inc.Description,
			&inc.IncomeDate, &inc.IsRecurring, &inc.Frequency, &inc.CreatedAt, &inc.SourceName,
		); err != nil {
			return nil, err
		}
		incomes = append(incomes, &inc)
	}

	return incomes, nil
}

// MonthlyTotals sums income per calendar month since the given date.
func (r *IncomeRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlyTotal, error) {
	query := squirrel.Select("to_char(income_date, 'YYYY-MM') AS month", "COALESCE(SUM(amount), 0)").
		From("income").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"income_date": since}).
		GroupBy("month").
		OrderBy("month").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []MonthlyTotal
	for rows.Next() {
		var t MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, nil
}

func (r *IncomeRepository) TotalSince(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	query := squirrel.Select("COALESCE(SUM(amount), 0)").
		From("income").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"income_date": since}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}
