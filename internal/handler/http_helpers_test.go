package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "ats-resume-optimizer/pkg/errors"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteAppError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeAppError(rr, apperrors.NewGenerationError("Error generating response", errors.New("quota")))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
	want := `{"error":"Error generating response: quota","type":"generation"}`
	if strings.TrimSpace(rr.Body.String()) != want {
		t.Fatalf("expected %s, got %s", want, rr.Body.String())
	}
}

func TestWriteAppError_PlainError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeAppError(rr, errors.New("boom"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("expected internal details to stay hidden, got %s", rr.Body.String())
	}
}
