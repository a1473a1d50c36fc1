package dto

type InvoiceItem struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Price       *float64 `json:"price"`
	Total       *float64 `json:"total"`
	Category    *string  `json:"category"`
}

type PaymentDetails struct {
	BankCode *string `json:"bank_code"`
	BankName *string `json:"bank_name"`
}

// InvoiceRecord is the wire form of an extracted invoice. Nil means the
// model could not find the field; it is never substituted with a zero.
type InvoiceRecord struct {
	InvoiceNumber  *string         `json:"invoice_number"`
	Date           *string         `json:"date"`
	Company        *string         `json:"company"`
	Customer       *string         `json:"customer"`
	Items          []InvoiceItem   `json:"items"`
	Total          *float64        `json:"total"`
	PaymentDetails *PaymentDetails `json:"payment_details"`
	Category       *string         `json:"category"`
}

// CommitInvoiceRequest is the human-reviewed record as submitted from the
// edit form. Amount and date are strings; the review step owns parsing.
type CommitInvoiceRequest struct {
	InvoiceNumber string `json:"invoice_number"`
	Company       string `json:"company"`
	Customer      string `json:"customer"`
	Amount        string `json:"amount" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Date          string `json:"date" validate:"required"`
	IsRecurring   bool   `json:"is_recurring"`
	Frequency     string `json:"frequency"`
}

type IncomeResponse struct {
	ID          string  `json:"id"`
	SourceID    string  `json:"source_id"`
	SourceName  string  `json:"source_name,omitempty"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	IncomeDate  string  `json:"income_date"`
	IsRecurring bool    `json:"is_recurring"`
	Frequency   string  `json:"frequency"`
	CreatedAt   string  `json:"created_at"`
}
