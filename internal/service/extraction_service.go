package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"receiptvision/internal/invoice"
	"receiptvision/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ExtractionService sends receipt images to Gemini with a fixed instruction
// and reduces the free-form answer to a normalized invoice record. The
// instruction is the only mechanism constraining output shape, so every
// field of the result is treated as untrusted until normalization.
type ExtractionService struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

func NewExtractionService(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*ExtractionService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &ExtractionService{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		logger:      logger,
	}, nil
}

// buildInstruction renders the fixed extraction instruction: the exact output
// schema plus the category taxonomy the model must choose from. Must stay in
// sync with the field set invoice.Normalize expects.
func buildInstruction() string {
	return `Extract the following information from this invoice image and return it as a JSON object with this exact structure:
{
  "invoice_number": string,
  "date": string,
  "company": string,
  "customer": string,
  "items": [
    {
      "description": string,
      "quantity": number,
      "price": number,
      "total": number,
      "category": string
    }
  ],
  "total": number,
  "payment_details": {
    "bank_code": string,
    "bank_name": string
  },
  "category": string
}
If any field is not found, use null. For the category, look through the items on the invoice. If an item corresponds to the description pair listed below, assign the category name respectively (name of the category, items that fall under the category):
` + invoice.TaxonomyPrompt()
}

// ExtractInvoice runs the extraction call for a receipt image and returns the
// normalized record. Fails with ErrExtraction if the network call fails, the
// response contains no isolable payload, or the payload is not valid JSON.
// No retry is performed; the caller decides whether to re-invoke.
func (s *ExtractionService) ExtractInvoice(ctx context.Context, data []byte, mimeType string) (*invoice.RawInvoiceRecord, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
				{Text: buildInstruction()},
			},
		},
	}
	return s.generate(ctx, contents)
}

// ExtractInvoiceFromText runs the extraction over already-extracted document
// text (the PDF path, where the text layer is read locally first).
func (s *ExtractionService) ExtractInvoiceFromText(ctx context.Context, text string) (*invoice.RawInvoiceRecord, error) {
	prompt := buildInstruction() + "\n\nThe invoice content is the following text:\n" + text
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}
	return s.generate(ctx, contents)
}

func (s *ExtractionService) generate(ctx context.Context, contents []*genai.Content) (*invoice.RawInvoiceRecord, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(s.temperature),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %v", ErrExtraction, err)
	}

	raw, err := parseInvoicePayload(resp.Text())
	if err != nil {
		return nil, err
	}

	rec := invoice.Normalize(raw)

	s.logger.Info("Invoice extraction completed",
		zap.Int("items", len(rec.Items)),
		zap.Bool("has_total", rec.Total != nil),
	)

	return &rec, nil
}

// parseInvoicePayload isolates the JSON object embedded in the model's
// response. The model may wrap its answer in code fences or surrounding
// prose; known wrapper markers are stripped before parsing.
func parseInvoicePayload(text string) (map[string]interface{}, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("%w: empty response from model", ErrExtraction)
	}

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// If there is still prose around the JSON object, keep only the span from
	// the first '{' to the last '}'.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON payload in response", ErrExtraction)
	}
	s = s[start : end+1]

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, fmt.Errorf("%w: unmarshal payload: %v", ErrExtraction, err)
	}

	return payload, nil
}
