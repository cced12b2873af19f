package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ats-resume-optimizer/internal/domain"
)

func TestPlainTextExtractor_SinglePage(t *testing.T) {
	e := NewPlainTextExtractor(NewMockLogger())

	text, err := e.Extract(context.Background(), buildTestPDF("Python Developer with 5 years experience"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Python Developer with 5 years experience") {
		t.Fatalf("expected page text, got %q", text)
	}
	if got := NormalizeText(strings.TrimSpace(text)); got != "python developer with 5 years experience" {
		t.Fatalf("unexpected normalized text %q", got)
	}
}

func TestPlainTextExtractor_PagesInOrderSkippingEmpty(t *testing.T) {
	e := NewPlainTextExtractor(NewMockLogger())

	text, err := e.Extract(context.Background(), buildTestPDF("First page", "", "Third page"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := strings.Index(text, "First page")
	third := strings.Index(text, "Third page")
	if first < 0 || third < 0 || first > third {
		t.Fatalf("expected both pages in order, got %q", text)
	}
	if strings.Contains(text, "\n\n") {
		t.Fatalf("expected the empty page to contribute nothing, got %q", text)
	}
	if !strings.Contains(text[first:third], "\n") {
		t.Fatalf("expected pages to be newline separated, got %q", text)
	}
}

func TestPlainTextExtractor_ZeroPages(t *testing.T) {
	e := NewPlainTextExtractor(NewMockLogger())

	text, err := e.Extract(context.Background(), buildTestPDF())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text for zero-page document, got %q", text)
	}
}

func TestPlainTextExtractor_EmptyDocument(t *testing.T) {
	e := NewPlainTextExtractor(NewMockLogger())

	text, err := e.Extract(context.Background(), nil)
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected no text on failure, got %q", text)
	}
}

func TestPlainTextExtractor_NotAPDF(t *testing.T) {
	e := NewPlainTextExtractor(NewMockLogger())

	text, err := e.Extract(context.Background(), []byte("this is definitely not a pdf document"))
	if !errors.Is(err, domain.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected no text on failure, got %q", text)
	}
}

func TestPlainTextExtractor_CancelledContext(t *testing.T) {
	e := NewPlainTextExtractor(NewMockLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Extract(ctx, buildTestPDF("page")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
