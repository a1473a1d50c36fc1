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

// CategoryTotal is the spending accumulated under one expense category.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Name       string
	Total      float64
}

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("id", "user_id", "category_id", "amount", "description", "transaction_date", "created_at").
		Values(expense.ID, expense.UserID, expense.CategoryID, expense.Amount, expense.Description, expense.TransactionDate, expense.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.ExpenseCategory, error) {
	query := squirrel.Select("id", "name", "description").
		From("expense_categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var cat models.ExpenseCategory
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
		return nil, err
	}

	return &cat, nil
}

func (r *ExpenseRepository) ListCategories(ctx context.Context) ([]*models.ExpenseCategory, error) {
	query := squirrel.Select("id", "name", "description").
		From("expense_categories").
		OrderBy("name").
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

	var categories []*models.ExpenseCategory
	for rows.Next() {
		var cat models.ExpenseCategory
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
	}

	return categories, nil
}

// UpsertCategory inserts a taxonomy category, leaving an existing row with
// the same name untouched.
func (r *ExpenseRepository) UpsertCategory(ctx context.Context, cat *models.ExpenseCategory) error {
	query := squirrel.Insert("expense_categories").
		Columns("id", "name", "description").
		Values(cat.ID, cat.Name, cat.Description).
		Suffix("ON CONFLICT (name) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ExpenseRepository) ListByUserID(ctx context.Context, userID uuid.UUID, since time.Time) ([]*models.Expense, error) {
	query := squirrel.Select("id", "user_id", "category_id", "amount", "description", "transaction_date", "created_at").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"transaction_date": since}).
		OrderBy("transaction_date DESC").
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

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.CategoryID, &e.Amount, &e.Description, &e.TransactionDate, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}

	return expenses, nil
}

// MonthlyTotals sums expenses per calendar month since the given date.
func (r *ExpenseRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]MonthlyTotal, error) {
	query := squirrel.Select("to_char(transaction_date, 'YYYY-MM') AS month", "COALESCE(SUM(amount), 0)").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"transaction_date": since}).
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

// CategoryTotals sums expenses per category since the given date.
func (r *ExpenseRepository) CategoryTotals(ctx context.Context, userID uuid.UUID, since time.Time) ([]CategoryTotal, error) {
	query := squirrel.Select("c.id", "c.name", "COALESCE(SUM(e.amount), 0)").
		From("expenses e").
		Join("expense_categories c ON c.id = e.category_id").
		Where(squirrel.Eq{"e.user_id": userID}).
		Where(squirrel.GtOrEq{"e.transaction_date": since}).
		GroupBy("c.id", "c.name").
		OrderBy("3 DESC").
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

	var totals []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		if err := rows.Scan(&t.CategoryID, &t.Name, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return totals, nil
}
