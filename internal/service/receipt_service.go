package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"receiptvision/internal/dto"
	"receiptvision/internal/invoice"
	"receiptvision/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceExtractor is the extraction stage of the pipeline. It is only
// invoked for a receipt that passed the capture boundary.
type InvoiceExtractor interface {
	ExtractInvoice(ctx context.Context, data []byte, mimeType string) (*invoice.RawInvoiceRecord, error)
	ExtractInvoiceFromText(ctx context.Context, text string) (*invoice.RawInvoiceRecord, error)
}

type receiptStore interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Receipt, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Receipt, error)
}

// ReceiptService owns the capture boundary (upload and decodability checks)
// and drives a stored receipt through extraction and normalization. Nothing
// durable beyond the file itself is written until the reviewed record is
// committed, so a failed extraction can be retried without re-uploading.
type ReceiptService struct {
	receipts  receiptStore
	extractor InvoiceExtractor
	uploadDir string
	logger    *zap.Logger
}

func NewReceiptService(receipts receiptStore, extractor InvoiceExtractor, uploadDir string, logger *zap.Logger) *ReceiptService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &ReceiptService{
		receipts:  receipts,
		extractor: extractor,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// Upload stores a captured frame or picked file. Fails with ErrInvalidFile
// when the bytes are not a decodable image or a PDF; in that case the
// extraction client is never invoked.
func (s *ReceiptService) Upload(ctx context.Context, userID uuid.UUID, file io.Reader, fileName string) (*dto.ReceiptResponse, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	mimeType, err := sniffReceiptType(data)
	if err != nil {
		return nil, err
	}

	fileID := uuid.New()
	ext := extensionFor(mimeType, fileName)
	newFileName := fileID.String() + ext
	filePath := filepath.Join(s.uploadDir, newFileName)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	now := time.Now()
	receipt := &models.Receipt{
		ID:        fileID,
		UserID:    userID,
		FileName:  fileName,
		FileSize:  int64(len(data)),
		FileURL:   "/uploads/" + newFileName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.receipts.Create(ctx, receipt); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create receipt record: %w", err)
	}

	return receiptToDTO(receipt), nil
}

// Process runs extraction and normalization for a stored receipt and returns
// the typed record for the review form. The pipeline halts here on
// ErrExtraction; the stored file is kept so the caller may retry.
func (s *ReceiptService) Process(ctx context.Context, userID, receiptID uuid.UUID) (*dto.ProcessReceiptResponse, error) {
	receipt, err := s.receipts.GetByID(ctx, receiptID)
	if err != nil {
		return nil, ErrReceiptNotFound
	}
	if receipt.UserID != userID {
		return nil, ErrForbidden
	}

	filePath := filepath.Join(s.uploadDir, filepath.Base(receipt.FileURL))
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt file: %w", err)
	}

	mimeType, err := sniffReceiptType(data)
	if err != nil {
		return nil, err
	}

	var rec *invoice.RawInvoiceRecord
	if mimeType == "application/pdf" {
		text, err := extractTextFromPDF(filePath, s.logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		rec, err = s.extractor.ExtractInvoiceFromText(ctx, text)
		if err != nil {
			return nil, err
		}
	} else {
		rec, err = s.extractor.ExtractInvoice(ctx, data, mimeType)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ProcessReceiptResponse{
		Receipt:  *receiptToDTO(receipt),
		Invoice:  invoiceRecordToDTO(rec),
		Defaults: reviewDefaults(rec),
	}, nil
}

func (s *ReceiptService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dto.ReceiptResponse, error) {
	receipts, err := s.receipts.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ReceiptResponse, len(receipts))
	for i, receipt := range receipts {
		responses[i] = receiptToDTO(receipt)
	}

	return responses, nil
}

// sniffReceiptType detects the content type from the file bytes and rejects
// anything that is not a decodable raster image or a PDF.
func sniffReceiptType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrInvalidFile
	}

	mimeType := http.DetectContentType(data)
	switch {
	case mimeType == "application/pdf":
		return mimeType, nil
	case strings.HasPrefix(mimeType, "image/"):
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return "", ErrInvalidFile
		}
		return mimeType, nil
	}

	return "", ErrInvalidFile
}

func extensionFor(mimeType, fileName string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	}
	if ext := filepath.Ext(fileName); ext != "" {
		return ext
	}
	return ".bin"
}

func receiptToDTO(receipt *models.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:        receipt.ID.String(),
		FileName:  receipt.FileName,
		FileSize:  receipt.FileSize,
		FileURL:   receipt.FileURL,
		CreatedAt: receipt.CreatedAt.Format(time.RFC3339),
	}
}

func invoiceRecordToDTO(rec *invoice.RawInvoiceRecord) dto.InvoiceRecord {
	out := dto.InvoiceRecord{
		InvoiceNumber: rec.InvoiceNumber,
		Company:       rec.Company,
		Customer:      rec.Customer,
		Total:         rec.Total,
		Category:      rec.Category,
		Items:         make([]dto.InvoiceItem, 0, len(rec.Items)),
	}

	if rec.Date != nil {
		date := rec.Date.Format("2006-01-02")
		out.Date = &date
	}
	if rec.PaymentDetails != nil {
		out.PaymentDetails = &dto.PaymentDetails{
			BankCode: rec.PaymentDetails.BankCode,
			BankName: rec.PaymentDetails.BankName,
		}
	}
	for _, item := range rec.Items {
		out.Items = append(out.Items, dto.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.UnitPrice,
			Total:       item.LineTotal,
			Category:    item.Category,
		})
	}

	return out
}

// reviewDefaults mirrors the review form prefill: extracted total as the
// amount, a composed description, the extracted date or today, one-time
// frequency.
func reviewDefaults(rec *invoice.RawInvoiceRecord) dto.ReviewDefaults {
	defaults := dto.ReviewDefaults{
		Amount:      rec.Total,
		Description: invoice.DefaultDescription(*rec),
		Date:        time.Now().Format("2006-01-02"),
		IsRecurring: false,
		Frequency:   string(invoice.FrequencyOneTime),
	}
	if rec.Date != nil {
		defaults.Date = rec.Date.Format("2006-01-02")
	}
	return defaults
}
