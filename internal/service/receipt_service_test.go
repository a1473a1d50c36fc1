package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"receiptvision/internal/invoice"
	"receiptvision/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeReceiptStore struct {
	created  []*models.Receipt
	receipts map[uuid.UUID]*models.Receipt
}

func newFakeReceiptStore() *fakeReceiptStore {
	return &fakeReceiptStore{receipts: map[uuid.UUID]*models.Receipt{}}
}

func (s *fakeReceiptStore) Create(ctx context.Context, receipt *models.Receipt) error {
	s.created = append(s.created, receipt)
	s.receipts[receipt.ID] = receipt
	return nil
}

func (s *fakeReceiptStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {
	r, ok := s.receipts[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return r, nil
}

func (s *fakeReceiptStore) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Receipt, error) {
	var out []*models.Receipt
	for _, r := range s.created {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeExtractor struct {
	calls int
	rec   *invoice.RawInvoiceRecord
	err   error
}

func (e *fakeExtractor) ExtractInvoice(ctx context.Context, data []byte, mimeType string) (*invoice.RawInvoiceRecord, error) {
	e.calls++
	return e.rec, e.err
}

func (e *fakeExtractor) ExtractInvoiceFromText(ctx context.Context, text string) (*invoice.RawInvoiceRecord, error) {
	e.calls++
	return e.rec, e.err
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestReceiptService_Upload_ValidImage(t *testing.T) {
	store := newFakeReceiptStore()
	extractor := &fakeExtractor{}
	svc := NewReceiptService(store, extractor, t.TempDir(), zap.NewNop())

	resp, err := svc.Upload(context.Background(), uuid.New(), bytes.NewReader(pngBytes(t)), "receipt.png")
	if err != nil {
		t.Fatalf("Upload() failed: %v", err)
	}
	if resp.FileName != "receipt.png" {
		t.Errorf("FileName = %q, want receipt.png", resp.FileName)
	}
	if len(store.created) != 1 {
		t.Fatalf("store has %d receipts, want 1", len(store.created))
	}
}

func TestReceiptService_Upload_RejectsUndecodableFiles(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty file", nil},
		{"plain text", []byte("this is not an image")},
		{"html page", []byte("<!DOCTYPE html><html><body>hi</body></html>")},
		{"png magic with garbage body", append([]byte("\x89PNG\r\n\x1a\n"), []byte("not actually a png")...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeReceiptStore()
			extractor := &fakeExtractor{}
			svc := NewReceiptService(store, extractor, t.TempDir(), zap.NewNop())

			_, err := svc.Upload(context.Background(), uuid.New(), bytes.NewReader(tt.data), "upload.bin")
			if !errors.Is(err, ErrInvalidFile) {
				t.Fatalf("Upload() error = %v, want ErrInvalidFile", err)
			}
			if len(store.created) != 0 {
				t.Errorf("store has %d receipts, want 0", len(store.created))
			}
			if extractor.calls != 0 {
				t.Errorf("extractor invoked %d times for invalid upload, want 0", extractor.calls)
			}
		})
	}
}

func TestReceiptService_Process(t *testing.T) {
	userID := uuid.New()
	total := 42.0
	store := newFakeReceiptStore()
	extractor := &fakeExtractor{rec: &invoice.RawInvoiceRecord{Total: &total, Items: []invoice.Item{}}}
	svc := NewReceiptService(store, extractor, t.TempDir(), zap.NewNop())

	uploaded, err := svc.Upload(context.Background(), userID, bytes.NewReader(pngBytes(t)), "receipt.png")
	if err != nil {
		t.Fatalf("Upload() failed: %v", err)
	}

	receiptID, err := uuid.Parse(uploaded.ID)
	if err != nil {
		t.Fatalf("bad receipt ID: %v", err)
	}

	resp, err := svc.Process(context.Background(), userID, receiptID)
	if err != nil {
		t.Fatalf("Process() failed: %v", err)
	}
	if extractor.calls != 1 {
		t.Errorf("extractor invoked %d times, want 1", extractor.calls)
	}
	if resp.Invoice.Total == nil || *resp.Invoice.Total != 42.0 {
		t.Errorf("Invoice.Total = %v, want 42.0", resp.Invoice.Total)
	}
	if resp.Defaults.Amount == nil || *resp.Defaults.Amount != 42.0 {
		t.Errorf("Defaults.Amount = %v, want 42.0", resp.Defaults.Amount)
	}
	if resp.Defaults.Frequency != "one-time" {
		t.Errorf("Defaults.Frequency = %q, want one-time", resp.Defaults.Frequency)
	}
}

func TestReceiptService_Process_OwnershipAndMissing(t *testing.T) {
	userID := uuid.New()
	store := newFakeReceiptStore()
	extractor := &fakeExtractor{rec: &invoice.RawInvoiceRecord{Items: []invoice.Item{}}}
	svc := NewReceiptService(store, extractor, t.TempDir(), zap.NewNop())

	uploaded, err := svc.Upload(context.Background(), userID, bytes.NewReader(pngBytes(t)), "receipt.png")
	if err != nil {
		t.Fatalf("Upload() failed: %v", err)
	}
	receiptID, _ := uuid.Parse(uploaded.ID)

	if _, err := svc.Process(context.Background(), uuid.New(), receiptID); !errors.Is(err, ErrForbidden) {
		t.Errorf("Process() with wrong user error = %v, want ErrForbidden", err)
	}
	if _, err := svc.Process(context.Background(), userID, uuid.New()); !errors.Is(err, ErrReceiptNotFound) {
		t.Errorf("Process() with unknown receipt error = %v, want ErrReceiptNotFound", err)
	}
}

func TestReceiptService_Process_ExtractionFailureIsRetryable(t *testing.T) {
	userID := uuid.New()
	store := newFakeReceiptStore()
	extractor := &fakeExtractor{err: ErrExtraction}
	svc := NewReceiptService(store, extractor, t.TempDir(), zap.NewNop())

	uploaded, err := svc.Upload(context.Background(), userID, bytes.NewReader(pngBytes(t)), "receipt.png")
	if err != nil {
		t.Fatalf("Upload() failed: %v", err)
	}
	receiptID, _ := uuid.Parse(uploaded.ID)

	if _, err := svc.Process(context.Background(), userID, receiptID); !errors.Is(err, ErrExtraction) {
		t.Fatalf("Process() error = %v, want ErrExtraction", err)
	}

	// The stored file survives a failed extraction, so a retry needs no
	// fresh upload.
	total := 10.0
	extractor.err = nil
	extractor.rec = &invoice.RawInvoiceRecord{Total: &total, Items: []invoice.Item{}}
	if _, err := svc.Process(context.Background(), userID, receiptID); err != nil {
		t.Fatalf("retry Process() failed: %v", err)
	}
}
