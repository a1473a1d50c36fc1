package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"receiptvision/internal/dto"
	"receiptvision/internal/invoice"
	"receiptvision/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type incomeSourceStore interface {
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.IncomeSource, error)
	Create(ctx context.Context, source *models.IncomeSource) error
}

type incomeStore interface {
	Create(ctx context.Context, income *models.Income) error
}

// InvoiceService is the ledger reconciler: it maps a reviewed invoice record
// onto the relational schema by resolving or creating the counterparty, then
// writing the income row that references it.
type InvoiceService struct {
	sources incomeSourceStore
	incomes incomeStore
	logger  *zap.Logger
}

func NewInvoiceService(sources incomeSourceStore, incomes incomeStore, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		sources: sources,
		incomes: incomes,
		logger:  logger,
	}
}

// Commit writes the reviewed record to the ledger. The two steps are not
// wrapped in a transaction: a counterparty left behind by a failed income
// insert is reusable by name on the next commit, not harmful garbage.
// Any storage failure is wrapped in ErrReconciliation.
func (s *InvoiceService) Commit(ctx context.Context, userID uuid.UUID, rec *invoice.ReviewedInvoiceRecord) (*dto.IncomeResponse, error) {
	source, err := s.resolveSource(ctx, userID, rec.Company)
	if err != nil {
		return nil, err
	}

	income := &models.Income{
		ID:          uuid.New(),
		UserID:      userID,
		SourceID:    source.ID,
		Amount:      rec.Amount,
		Description: sanitizeUTF8(rec.Description),
		IncomeDate:  rec.Date,
		IsRecurring: rec.IsRecurring,
		Frequency:   string(rec.Frequency),
		CreatedAt:   time.Now(),
	}

	if err := s.incomes.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("%w: create income: %w", ErrReconciliation, err)
	}

	s.logger.Info("Invoice committed to ledger",
		zap.String("income_id", income.ID.String()),
		zap.String("source_id", source.ID.String()),
		zap.Float64("amount", income.Amount),
	)

	return &dto.IncomeResponse{
		ID:          income.ID.String(),
		SourceID:    source.ID.String(),
		SourceName:  source.Name,
		Amount:      income.Amount,
		Description: income.Description,
		IncomeDate:  income.IncomeDate.Format("2006-01-02"),
		IsRecurring: income.IsRecurring,
		Frequency:   income.Frequency,
		CreatedAt:   income.CreatedAt.Format(time.RFC3339),
	}, nil
}

// resolveSource looks up the counterparty by (owner, name) and creates it on
// first sighting. A unique violation means a concurrent commit created the
// same source first; the row is re-fetched and reused instead of erroring.
func (s *InvoiceService) resolveSource(ctx context.Context, userID uuid.UUID, name string) (*models.IncomeSource, error) {
	source, err := s.sources.GetByName(ctx, userID, name)
	if err == nil {
		return source, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: lookup income source: %w", ErrReconciliation, err)
	}

	source = &models.IncomeSource{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: fmt.Sprintf("Income from %s", name),
		CreatedAt:   time.Now(),
	}

	err = s.sources.Create(ctx, source)
	if err == nil {
		return source, nil
	}
	if isUniqueViolation(err) {
		existing, fetchErr := s.sources.GetByName(ctx, userID, name)
		if fetchErr != nil {
			return nil, fmt.Errorf("%w: refetch income source after conflict: %w", ErrReconciliation, fetchErr)
		}
		return existing, nil
	}

	return nil, fmt.Errorf("%w: create income source: %w", ErrReconciliation, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
