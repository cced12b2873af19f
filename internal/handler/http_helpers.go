package handler

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "ats-resume-optimizer/pkg/errors"
)

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestIDHeader carries the per-request ID on responses.
const RequestIDHeader = "X-Request-ID"

// GetRequestID extracts the request ID set by RequestIDMiddleware
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

type errorResponse struct {
	Error string `json:"error"`
	Type  string `json:"type,omitempty"`
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

// writeAppError writes err with the status code and message of its kind.
func writeAppError(w http.ResponseWriter, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, appErr.StatusCode, errorResponse{Error: appErr.UserMessage(), Type: string(appErr.Type)})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
