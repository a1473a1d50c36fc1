package repository

import (
	"context"

	"receiptvision/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type GoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

const goalColumns = "id, user_id, title, description, category, target_amount, current_amount, target_date, status, created_at"

func (r *GoalRepository) Create(ctx context.Context, goal *models.FinancialGoal) error {
	query := squirrel.Insert("financial_goals").
		Columns("id", "user_id", "title", "description", "category", "target_amount", "current_amount", "target_date", "status", "created_at").
		Values(goal.ID, goal.UserID, goal.Title, goal.Description, goal.Category, goal.TargetAmount, goal.CurrentAmount, goal.TargetDate, goal.Status, goal.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GoalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FinancialGoal, error) {
	query := squirrel.Select(goalColumns).
		From("financial_goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var goal models.FinancialGoal
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.Category,
		&goal.TargetAmount, &goal.CurrentAmount, &goal.TargetDate, &goal.Status, &goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *GoalRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.FinancialGoal, error) {
	query := squirrel.Select(goalColumns).
		From("financial_goals").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
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

	var goals []*models.FinancialGoal
	for rows.Next() {
		var goal models.FinancialGoal
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Title, &goal.Description, &goal.Category,
			&goal.TargetAmount, &goal.CurrentAmount, &goal.TargetDate, &goal.Status, &goal.CreatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, &goal)
	}

	return goals, nil
}

func (r *GoalRepository) Update(ctx context.Context, goal *models.FinancialGoal) error {
	query := squirrel.Update("financial_goals").
		Set("title", goal.Title).
		Set("description", goal.Description).
		Set("category", goal.Category).
		Set("target_amount", goal.TargetAmount).
		Set("current_amount", goal.CurrentAmount).
		Set("target_date", goal.TargetDate).
		Set("status", goal.Status).
		Where(squirrel.Eq{"id": goal.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// UpdateProgress writes only the saved amount and the status derived from
// it, leaving the rest of the goal untouched.
func (r *GoalRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentAmount float64, status models.GoalStatus) error {
	query := squirrel.Update("financial_goals").
		Set("current_amount", currentAmount).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GoalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("financial_goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
