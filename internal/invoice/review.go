package invoice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ReviewForm carries the human-edited invoice fields as submitted.
// Amount and date arrive as strings so the review step owns all parsing.
type ReviewForm struct {
	InvoiceNumber string
	Company       string
	Customer      string
	Amount        string
	Description   string
	Date          string
	IsRecurring   bool
	Frequency     string
}

// ValidationError reports which submitted fields failed review.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Review validates the edited form and produces a ReviewedInvoiceRecord.
// This is the only pipeline stage allowed to reject on missing required
// fields; earlier stages always pass gaps through so the human can fill them.
func Review(form ReviewForm) (*ReviewedInvoiceRecord, error) {
	fields := map[string]string{}

	var amount float64
	if strings.TrimSpace(form.Amount) == "" {
		fields["amount"] = "amount is required"
	} else {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(form.Amount), 64)
		switch {
		case err != nil:
			fields["amount"] = "amount must be a number"
		case math.IsNaN(parsed) || math.IsInf(parsed, 0):
			// ParseFloat accepts "NaN" and "Inf" spellings; neither is a
			// sum of money.
			fields["amount"] = "amount must be a finite number"
		case parsed < 0:
			fields["amount"] = "amount must not be negative"
		default:
			amount = parsed
		}
	}

	var date time.Time
	if strings.TrimSpace(form.Date) == "" {
		fields["date"] = "date is required"
	} else {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(form.Date))
		if err != nil {
			fields["date"] = "date must be a valid calendar date (YYYY-MM-DD)"
		} else {
			date = parsed
		}
	}

	description := strings.TrimSpace(form.Description)
	if description == "" {
		fields["description"] = "description is required"
	}

	frequency := FrequencyOneTime
	if form.IsRecurring {
		f := Frequency(form.Frequency)
		if !f.Valid() || f == FrequencyOneTime {
			fields["frequency"] = "recurring income requires a frequency of daily, weekly, monthly or yearly"
		} else {
			frequency = f
		}
	}
	// A one-time frequency on a non-recurring record is forced, whatever was
	// submitted: is_recurring == (frequency != one-time) must hold.

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &ReviewedInvoiceRecord{
		InvoiceNumber: strings.TrimSpace(form.InvoiceNumber),
		Company:       strings.TrimSpace(form.Company),
		Customer:      strings.TrimSpace(form.Customer),
		Amount:        amount,
		Description:   description,
		Date:          date,
		IsRecurring:   frequency != FrequencyOneTime,
		Frequency:     frequency,
	}, nil
}

// DefaultDescription builds the description the review form is prefilled
// with when the human has not written one yet.
func DefaultDescription(rec RawInvoiceRecord) string {
	number, company, customer := "", "", ""
	if rec.InvoiceNumber != nil {
		number = *rec.InvoiceNumber
	}
	if rec.Company != nil {
		company = *rec.Company
	}
	if rec.Customer != nil {
		customer = *rec.Customer
	}
	return fmt.Sprintf("Invoice #%s from %s - Customer: %s", number, company, customer)
}
