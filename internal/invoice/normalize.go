package invoice

import (
	"strconv"
	"strings"
	"time"
)

// Normalize converts decoded extraction output into a RawInvoiceRecord.
// This is the single place untrusted model output becomes a typed value, so
// it never rejects input: any field that fails to parse degrades to nil
// instead of aborting, leaving gaps for the review step to fill.
func Normalize(raw map[string]interface{}) RawInvoiceRecord {
	rec := RawInvoiceRecord{
		InvoiceNumber: stringField(raw, "invoice_number"),
		Date:          dateField(raw, "date"),
		Company:       stringField(raw, "company"),
		Customer:      stringField(raw, "customer"),
		Total:         numberField(raw, "total"),
		Items:         []Item{},
	}

	if cat := stringField(raw, "category"); cat != nil {
		if canonical, ok := CanonicalCategory(*cat); ok {
			rec.Category = &canonical
		}
	}

	if pd, ok := raw["payment_details"].(map[string]interface{}); ok {
		details := PaymentDetails{
			BankCode: stringField(pd, "bank_code"),
			BankName: stringField(pd, "bank_name"),
		}
		if details.BankCode != nil || details.BankName != nil {
			rec.PaymentDetails = &details
		}
	}

	if items, ok := raw["items"].([]interface{}); ok {
		for _, entry := range items {
			m, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			item := Item{
				Description: stringField(m, "description"),
				Quantity:    numberField(m, "quantity"),
				UnitPrice:   numberField(m, "price"),
				LineTotal:   numberField(m, "total"),
			}
			if cat := stringField(m, "category"); cat != nil {
				if canonical, ok := CanonicalCategory(*cat); ok {
					item.Category = &canonical
				} else {
					item.Category = cat
				}
			}
			rec.Items = append(rec.Items, item)
		}
	}

	return rec
}

// stringField returns the string at key, or nil when absent, null, non-string
// or empty.
func stringField(m map[string]interface{}, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// numberField coerces the value at key to a decimal: JSON numbers are taken
// as-is, numeric strings are parsed, anything else is missing.
func numberField(m map[string]interface{}, key string) *float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		return &parsed
	}
	return nil
}

// dateField coerces the value at key to an ISO-8601 calendar date.
func dateField(m map[string]interface{}, key string) *time.Time {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
