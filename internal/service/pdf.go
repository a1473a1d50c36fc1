package service

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// extractTextFromPDF reads the text layer of a PDF invoice with go-fitz so
// only text, not the whole document, is sent to the model.
func extractTextFromPDF(path string, logger *zap.Logger) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", path),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("no text found in PDF")
	}

	logger.Info("PDF text extracted",
		zap.String("file", path),
		zap.Int("pages", doc.NumPage()),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}
