package invoice

import "time"

// Frequency describes how often a recurring income repeats.
type Frequency string

const (
	FrequencyOneTime Frequency = "one-time"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOneTime, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// PaymentDetails holds the bank reference printed on an invoice, when present.
type PaymentDetails struct {
	BankCode *string `json:"bank_code"`
	BankName *string `json:"bank_name"`
}

// Item is a single extracted line item. Every field is independently
// optional; a nil pointer means the model could not find the value.
type Item struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"price"`
	LineTotal   *float64 `json:"total"`
	Category    *string  `json:"category"`
}

// RawInvoiceRecord is the typed form of the model's extraction output.
// Absent fields stay nil; a missing total is never silently turned into a
// zero-value transaction.
type RawInvoiceRecord struct {
	InvoiceNumber  *string         `json:"invoice_number"`
	Date           *time.Time      `json:"date"`
	Company        *string         `json:"company"`
	Customer       *string         `json:"customer"`
	Items          []Item          `json:"items"`
	Total          *float64        `json:"total"`
	PaymentDetails *PaymentDetails `json:"payment_details"`
	Category       *string         `json:"category"`
}

// ReviewedInvoiceRecord is a RawInvoiceRecord after human correction.
// Amount, date and description are guaranteed present, and
// IsRecurring == (Frequency != one-time) always holds.
type ReviewedInvoiceRecord struct {
	InvoiceNumber string
	Company       string
	Customer      string
	Amount        float64
	Description   string
	Date          time.Time
	IsRecurring   bool
	Frequency     Frequency
}
