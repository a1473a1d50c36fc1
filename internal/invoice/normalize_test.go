package invoice

import (
	"encoding/json"
	"testing"
	"time"
)

func decode(t *testing.T, payload string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	return m
}

func TestNormalize_CompleteInvoice(t *testing.T) {
	raw := decode(t, `{
		"invoice_number": "INV-2024-001",
		"date": "2024-03-15",
		"company": "Acme Corp",
		"customer": "Jane Doe",
		"total": 149.99,
		"category": "Groceries & Food",
		"payment_details": {"bank_code": "021000021", "bank_name": "Chase"},
		"items": [
			{"description": "Widget", "quantity": 2, "price": 50, "total": 100, "category": "Groceries & Food"},
			{"description": "Gadget", "quantity": 1, "price": 49.99, "total": 49.99}
		]
	}`)

	rec := Normalize(raw)

	if rec.InvoiceNumber == nil || *rec.InvoiceNumber != "INV-2024-001" {
		t.Errorf("InvoiceNumber = %v, want INV-2024-001", rec.InvoiceNumber)
	}
	if rec.Date == nil || !rec.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want 2024-03-15", rec.Date)
	}
	if rec.Company == nil || *rec.Company != "Acme Corp" {
		t.Errorf("Company = %v, want Acme Corp", rec.Company)
	}
	if rec.Total == nil || *rec.Total != 149.99 {
		t.Errorf("Total = %v, want 149.99", rec.Total)
	}
	if rec.Category == nil || *rec.Category != "Groceries & Food" {
		t.Errorf("Category = %v, want Groceries & Food", rec.Category)
	}
	if rec.PaymentDetails == nil || rec.PaymentDetails.BankName == nil || *rec.PaymentDetails.BankName != "Chase" {
		t.Errorf("PaymentDetails = %+v, want bank name Chase", rec.PaymentDetails)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(rec.Items))
	}
	if rec.Items[0].Quantity == nil || *rec.Items[0].Quantity != 2 {
		t.Errorf("Items[0].Quantity = %v, want 2", rec.Items[0].Quantity)
	}
	if rec.Items[1].Category != nil {
		t.Errorf("Items[1].Category = %v, want nil", rec.Items[1].Category)
	}
}

func TestNormalize_MissingFieldsStayNil(t *testing.T) {
	rec := Normalize(decode(t, `{"company": "Corner Shop"}`))

	if rec.InvoiceNumber != nil {
		t.Errorf("InvoiceNumber = %v, want nil", rec.InvoiceNumber)
	}
	if rec.Date != nil {
		t.Errorf("Date = %v, want nil", rec.Date)
	}
	if rec.Total != nil {
		t.Errorf("Total = %v, want nil", rec.Total)
	}
	if rec.PaymentDetails != nil {
		t.Errorf("PaymentDetails = %v, want nil", rec.PaymentDetails)
	}
	if rec.Items == nil {
		t.Fatal("Items is nil, want empty slice")
	}
	if len(rec.Items) != 0 {
		t.Errorf("len(Items) = %d, want 0", len(rec.Items))
	}
}

func TestNormalize_NullAndEmptyAreMissing(t *testing.T) {
	rec := Normalize(decode(t, `{
		"invoice_number": null,
		"company": "",
		"customer": "   ",
		"total": null
	}`))

	if rec.InvoiceNumber != nil {
		t.Errorf("null invoice_number = %v, want nil", rec.InvoiceNumber)
	}
	if rec.Company != nil {
		t.Errorf("empty company = %v, want nil", rec.Company)
	}
	if rec.Customer != nil {
		t.Errorf("blank customer = %v, want nil", rec.Customer)
	}
	if rec.Total != nil {
		t.Errorf("null total = %v, want nil", rec.Total)
	}
}

func TestNormalize_FieldCoercion(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, rec RawInvoiceRecord)
	}{
		{
			name:    "numeric string total is parsed",
			payload: `{"total": "42.50"}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if rec.Total == nil || *rec.Total != 42.50 {
					t.Errorf("Total = %v, want 42.50", rec.Total)
				}
			},
		},
		{
			name:    "non-numeric total degrades to nil",
			payload: `{"total": "forty-two"}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if rec.Total != nil {
					t.Errorf("Total = %v, want nil", rec.Total)
				}
			},
		},
		{
			name:    "rfc3339 date is accepted",
			payload: `{"date": "2024-03-15T10:30:00Z"}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if rec.Date == nil || rec.Date.Year() != 2024 || rec.Date.Month() != time.March {
					t.Errorf("Date = %v, want March 2024", rec.Date)
				}
			},
		},
		{
			name:    "garbage date degrades to nil",
			payload: `{"date": "next tuesday"}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if rec.Date != nil {
					t.Errorf("Date = %v, want nil", rec.Date)
				}
			},
		},
		{
			name:    "unknown top-level category degrades to nil",
			payload: `{"category": "Cryptocurrency"}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if rec.Category != nil {
					t.Errorf("Category = %v, want nil", rec.Category)
				}
			},
		},
		{
			name:    "category is resolved case-insensitively",
			payload: `{"category": "groceries & food"}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if rec.Category == nil || *rec.Category != "Groceries & Food" {
					t.Errorf("Category = %v, want Groceries & Food", rec.Category)
				}
			},
		},
		{
			name:    "non-object items are skipped",
			payload: `{"items": ["a string", 42, {"description": "Real item"}]}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if len(rec.Items) != 1 {
					t.Fatalf("len(Items) = %d, want 1", len(rec.Items))
				}
				if rec.Items[0].Description == nil || *rec.Items[0].Description != "Real item" {
					t.Errorf("Items[0].Description = %v, want Real item", rec.Items[0].Description)
				}
			},
		},
		{
			name:    "unknown item category is kept as reported",
			payload: `{"items": [{"category": "Mystery Stuff"}]}`,
			check: func(t *testing.T, rec RawInvoiceRecord) {
				if len(rec.Items) != 1 {
					t.Fatalf("len(Items) = %d, want 1", len(rec.Items))
				}
				if rec.Items[0].Category == nil || *rec.Items[0].Category != "Mystery Stuff" {
					t.Errorf("Items[0].Category = %v, want Mystery Stuff", rec.Items[0].Category)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Normalize(decode(t, tt.payload)))
		})
	}
}

func TestNormalize_NeverPanicsOnHostileShapes(t *testing.T) {
	payloads := []string{
		`{}`,
		`{"items": {}}`,
		`{"items": null}`,
		`{"payment_details": "wire transfer"}`,
		`{"payment_details": {"bank_code": 123}}`,
		`{"total": true, "date": 20240315, "company": ["Acme"]}`,
	}

	for _, payload := range payloads {
		rec := Normalize(decode(t, payload))
		if rec.Items == nil {
			t.Errorf("payload %s: Items is nil, want empty slice", payload)
		}
	}
}
