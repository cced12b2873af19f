// Package handler provides HTTP handlers for the web page and the API.
package handler

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"path/filepath"

	"ats-resume-optimizer/internal/domain"
	apperrors "ats-resume-optimizer/pkg/errors"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const (
	fieldJobDescription = "job_description"
	fieldResume         = "resume"

	// multipartMemory is how much of a form is buffered in memory before
	// spilling to temp files.
	multipartMemory = 32 << 20
	// formOverhead allows for the text fields and multipart framing on top
	// of the file itself.
	formOverhead = 1 << 20
)

type pageData struct {
	Ready          bool
	Banner         string
	JobDescription string
	Analysis       string
	Error          string
}

type analyzeResponse struct {
	Analysis string `json:"analysis"`
}

// AnalysisHandler serves the single page and the analyze API.
type AnalysisHandler struct {
	service     domain.AnalysisService
	maxFileSize int64
	logger      domain.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service domain.AnalysisService, maxFileSize int64, logger domain.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service:     service,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Index renders the empty form.
func (h *AnalysisHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.newPage())
}

// Submit runs the form submission through the pipeline and renders the
// result or the error in place.
func (h *AnalysisHandler) Submit(w http.ResponseWriter, r *http.Request) {
	page := h.newPage()

	req, appErr := h.readRequest(w, r)
	page.JobDescription = req.JobDescription
	if appErr != nil {
		page.Error = appErr.UserMessage()
		h.render(w, appErr.StatusCode, page)
		return
	}

	result, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		page.Error = h.userMessage(err)
		h.render(w, apperrors.GetStatusCode(err), page)
		return
	}

	page.Analysis = result.Analysis
	h.render(w, http.StatusOK, page)
}

// Analyze is the JSON counterpart of Submit.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, appErr := h.readRequest(w, r)
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	result, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Analysis: result.Analysis})
}

// readRequest pulls the job description and the uploaded file out of a
// multipart form. A missing file is left for the service to reject so the
// credential check keeps precedence.
func (h *AnalysisHandler) readRequest(w http.ResponseWriter, r *http.Request) (domain.AnalysisRequest, *apperrors.AppError) {
	var req domain.AnalysisRequest

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+formOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, apperrors.NewValidationError(domain.MsgDocumentTooLarge, domain.ErrDocumentTooLarge)
		}
		return req, apperrors.NewValidationError(domain.MsgMissingDocument, err)
	}
	req.JobDescription = r.FormValue(fieldJobDescription)

	file, header, err := r.FormFile(fieldResume)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return req, nil
		}
		return req, apperrors.NewValidationError(domain.MsgMissingDocument, err)
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		return req, apperrors.NewValidationError(domain.MsgDocumentTooLarge, domain.ErrDocumentTooLarge)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return req, apperrors.NewValidationError(domain.MsgMissingDocument, err)
	}

	req.Document = data
	req.Filename = filepath.Base(header.Filename)
	return req, nil
}

func (h *AnalysisHandler) newPage() pageData {
	return pageData{
		Ready:  h.service.Ready(),
		Banner: domain.MsgMissingCredentialUI,
	}
}

func (h *AnalysisHandler) userMessage(err error) string {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.UserMessage()
	}
	return "Internal server error"
}

func (h *AnalysisHandler) render(w http.ResponseWriter, statusCode int, page pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := pageTemplate.Execute(w, page); err != nil {
		h.logger.Error("Failed to render page", err)
	}
}
