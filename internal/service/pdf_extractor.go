package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"ats-resume-optimizer/internal/domain"

	"github.com/ledongthuc/pdf"
)

// PlainTextExtractor implements domain.TextExtractor with the pure-Go
// ledongthuc/pdf reader.
type PlainTextExtractor struct {
	logger domain.Logger
}

// NewPlainTextExtractor creates an extractor
func NewPlainTextExtractor(logger domain.Logger) *PlainTextExtractor {
	return &PlainTextExtractor{logger: logger}
}

// Extract reads pages in order and joins the non-empty page texts with "\n".
// Any parser failure, including a panic inside the parser, returns
// ErrExtractionFailed and no text.
func (e *PlainTextExtractor) Extract(ctx context.Context, document []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: parser panic: %v", domain.ErrExtractionFailed, r)
		}
	}()

	if len(document) == 0 {
		return "", fmt.Errorf("%w: empty document", domain.ErrExtractionFailed)
	}

	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrExtractionFailed, i, err)
		}
		if pageText == "" {
			e.logger.Debug("PDF page has no text", "page", i, "total", numPages)
			continue
		}
		pages = append(pages, pageText)
	}

	e.logger.Debug("PDF text extracted", "pages", numPages, "pages_with_text", len(pages))
	return strings.Join(pages, "\n"), nil
}
