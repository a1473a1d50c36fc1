package invoice

import (
	"errors"
	"testing"
	"time"
)

func validForm() ReviewForm {
	return ReviewForm{
		InvoiceNumber: "INV-001",
		Company:       "Acme Corp",
		Customer:      "Jane Doe",
		Amount:        "149.99",
		Description:   "Invoice #INV-001 from Acme Corp - Customer: Jane Doe",
		Date:          "2024-03-15",
		IsRecurring:   false,
		Frequency:     "one-time",
	}
}

func TestReview_ValidForm(t *testing.T) {
	rec, err := Review(validForm())
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}

	if rec.Amount != 149.99 {
		t.Errorf("Amount = %v, want 149.99", rec.Amount)
	}
	if !rec.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want 2024-03-15", rec.Date)
	}
	if rec.IsRecurring {
		t.Error("IsRecurring = true, want false")
	}
	if rec.Frequency != FrequencyOneTime {
		t.Errorf("Frequency = %v, want one-time", rec.Frequency)
	}
}

func TestReview_FieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *ReviewForm)
		field  string
	}{
		{"missing amount", func(f *ReviewForm) { f.Amount = "" }, "amount"},
		{"non-numeric amount", func(f *ReviewForm) { f.Amount = "lots" }, "amount"},
		{"negative amount", func(f *ReviewForm) { f.Amount = "-10" }, "amount"},
		{"NaN amount", func(f *ReviewForm) { f.Amount = "NaN" }, "amount"},
		{"positive infinity amount", func(f *ReviewForm) { f.Amount = "+Inf" }, "amount"},
		{"negative infinity amount", func(f *ReviewForm) { f.Amount = "-Inf" }, "amount"},
		{"missing date", func(f *ReviewForm) { f.Date = "" }, "date"},
		{"malformed date", func(f *ReviewForm) { f.Date = "15/03/2024" }, "date"},
		{"missing description", func(f *ReviewForm) { f.Description = "  " }, "description"},
		{"recurring without frequency", func(f *ReviewForm) { f.IsRecurring = true; f.Frequency = "" }, "frequency"},
		{"recurring with one-time frequency", func(f *ReviewForm) { f.IsRecurring = true; f.Frequency = "one-time" }, "frequency"},
		{"recurring with unknown frequency", func(f *ReviewForm) { f.IsRecurring = true; f.Frequency = "fortnightly" }, "frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.modify(&form)

			_, err := Review(form)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Review() error = %v, want ValidationError", err)
			}
			if _, ok := vErr.Fields[tt.field]; !ok {
				t.Errorf("ValidationError.Fields = %v, want entry for %q", vErr.Fields, tt.field)
			}
		})
	}
}

func TestReview_ZeroAmountIsAccepted(t *testing.T) {
	form := validForm()
	form.Amount = "0"

	rec, err := Review(form)
	if err != nil {
		t.Fatalf("Review() failed on zero amount: %v", err)
	}
	if rec.Amount != 0 {
		t.Errorf("Amount = %v, want 0", rec.Amount)
	}
}

func TestReview_RecurrenceInvariant(t *testing.T) {
	// Recurring with a real frequency keeps both.
	form := validForm()
	form.IsRecurring = true
	form.Frequency = "monthly"

	rec, err := Review(form)
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if !rec.IsRecurring || rec.Frequency != FrequencyMonthly {
		t.Errorf("got IsRecurring=%v Frequency=%v, want true/monthly", rec.IsRecurring, rec.Frequency)
	}

	// Non-recurring forces one-time no matter what frequency was submitted.
	form = validForm()
	form.IsRecurring = false
	form.Frequency = "weekly"

	rec, err = Review(form)
	if err != nil {
		t.Fatalf("Review() failed: %v", err)
	}
	if rec.IsRecurring || rec.Frequency != FrequencyOneTime {
		t.Errorf("got IsRecurring=%v Frequency=%v, want false/one-time", rec.IsRecurring, rec.Frequency)
	}
}

func TestReview_CollectsAllFieldErrors(t *testing.T) {
	_, err := Review(ReviewForm{})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Review() error = %v, want ValidationError", err)
	}
	for _, field := range []string{"amount", "date", "description"} {
		if _, ok := vErr.Fields[field]; !ok {
			t.Errorf("ValidationError.Fields missing %q: %v", field, vErr.Fields)
		}
	}
}

func TestDefaultDescription(t *testing.T) {
	number := "INV-001"
	company := "Acme Corp"
	customer := "Jane Doe"

	rec := RawInvoiceRecord{
		InvoiceNumber: &number,
		Company:       &company,
		Customer:      &customer,
	}
	want := "Invoice #INV-001 from Acme Corp - Customer: Jane Doe"
	if got := DefaultDescription(rec); got != want {
		t.Errorf("DefaultDescription() = %q, want %q", got, want)
	}

	// Missing fields leave gaps rather than failing.
	want = "Invoice # from  - Customer: "
	if got := DefaultDescription(RawInvoiceRecord{}); got != want {
		t.Errorf("DefaultDescription(empty) = %q, want %q", got, want)
	}
}
