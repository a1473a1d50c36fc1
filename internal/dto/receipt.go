package dto

type ReceiptResponse struct {
	ID        string `json:"id"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	FileURL   string `json:"file_url"`
	CreatedAt string `json:"created_at"`
}

// ProcessReceiptResponse carries the extraction result for the review form:
// the typed record with explicit nulls for everything the model could not
// find, plus the prefilled form defaults.
type ProcessReceiptResponse struct {
	Receipt  ReceiptResponse `json:"receipt"`
	Invoice  InvoiceRecord   `json:"invoice"`
	Defaults ReviewDefaults  `json:"defaults"`
}

// ReviewDefaults mirrors the review form's prefill rules: amount from the
// extracted total, a composed description, today's date when none was found.
type ReviewDefaults struct {
	Amount      *float64 `json:"amount"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	IsRecurring bool     `json:"is_recurring"`
	Frequency   string   `json:"frequency"`
}
