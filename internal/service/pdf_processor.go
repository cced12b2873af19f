package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ats-resume-optimizer/internal/domain"

	"github.com/gen2brain/go-fitz"
)

const defaultPageTimeout = 90 * time.Second

// MuPDFExtractor implements domain.TextExtractor with MuPDF through go-fitz.
// It copes with more damaged files than PlainTextExtractor at the cost of a
// native dependency.
type MuPDFExtractor struct {
	logger      domain.Logger
	pageTimeout time.Duration
	readPage    func(doc *fitz.Document, page int) (string, error)
}

// NewMuPDFExtractor creates a MuPDF-backed extractor
func NewMuPDFExtractor(logger domain.Logger) *MuPDFExtractor {
	return &MuPDFExtractor{
		logger:      logger,
		pageTimeout: defaultPageTimeout,
		readPage:    (*fitz.Document).Text,
	}
}

// Extract reads pages in order and joins the non-empty page texts with "\n".
// A page that errors or exceeds the page timeout fails the whole document.
func (e *MuPDFExtractor) Extract(ctx context.Context, document []byte) (string, error) {
	if len(document) == 0 {
		return "", fmt.Errorf("%w: empty document", domain.ErrExtractionFailed)
	}

	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	// A page still running after a timeout owns the close.
	closeDoc := true
	defer func() {
		if closeDoc {
			doc.Close()
		}
	}()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)

	type pageResult struct {
		text string
		err  error
	}

	for pageNum := 0; pageNum < numPages; pageNum++ {
		e.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)

		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			t, err := e.readPage(doc, idx)
			resultCh <- pageResult{text: t, err: err}
		}(pageNum)

		var res pageResult
		select {
		case res = <-resultCh:
		case <-time.After(e.pageTimeout):
			closeDoc = false
			go func() { <-resultCh; doc.Close() }()
			return "", fmt.Errorf("%w: page %d timed out after %v", domain.ErrExtractionFailed, pageNum+1, e.pageTimeout)
		case <-ctx.Done():
			closeDoc = false
			go func() { <-resultCh; doc.Close() }()
			return "", ctx.Err()
		}
		if res.err != nil {
			return "", fmt.Errorf("%w: page %d: %v", domain.ErrExtractionFailed, pageNum+1, res.err)
		}

		text := strings.TrimSpace(res.text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
