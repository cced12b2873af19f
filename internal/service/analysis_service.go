package service

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"ats-resume-optimizer/internal/domain"
	apperrors "ats-resume-optimizer/pkg/errors"
)

// AnalysisService sequences validation, extraction, normalization, prompt
// assembly and generation for one request. It holds no per-request state.
type AnalysisService struct {
	extractor  domain.TextExtractor
	normalizer domain.TextNormalizer
	prompts    domain.PromptBuilder
	generator  domain.TextGenerator // nil when no credential is configured
	logger     domain.Logger
}

// NewAnalysisService wires the pipeline. Pass a nil generator when the API
// key is missing; every request then fails with a configuration error.
func NewAnalysisService(
	extractor domain.TextExtractor,
	normalizer domain.TextNormalizer,
	prompts domain.PromptBuilder,
	generator domain.TextGenerator,
	logger domain.Logger,
) *AnalysisService {
	return &AnalysisService{
		extractor:  extractor,
		normalizer: normalizer,
		prompts:    prompts,
		generator:  generator,
		logger:     logger,
	}
}

// Ready reports whether a credential is configured.
func (s *AnalysisService) Ready() bool {
	return s.generator != nil
}

// Analyze runs one pass: Validating, Extracting, Normalizing, Prompting,
// Generating. The first failing stage ends the pass with an *AppError.
func (s *AnalysisService) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	s.enter(domain.StageValidating, req)
	if appErr := s.validate(req); appErr != nil {
		return nil, s.done(appErr)
	}

	s.enter(domain.StageExtracting, req)
	rawText, err := s.extractor.Extract(ctx, req.Document)
	if err != nil {
		if ctx.Err() != nil {
			return nil, s.done(apperrors.NewInternalError("Request cancelled", err))
		}
		return nil, s.done(apperrors.NewExtractionError(domain.MsgExtractionFailed, err))
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, s.done(apperrors.NewExtractionError(domain.MsgExtractionFailed, domain.ErrNoExtractableText))
	}

	s.enter(domain.StageNormalizing, req)
	resumeText := s.normalizer.Normalize(rawText)

	s.enter(domain.StagePrompting, req)
	prompt, err := s.prompts.Build(resumeText, req.JobDescription)
	if err != nil {
		return nil, s.done(apperrors.NewTemplateError(domain.MsgTemplateFailed, err))
	}

	s.enter(domain.StageGenerating, req)
	analysis, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, s.done(apperrors.NewGenerationError(domain.MsgGenerationFailed, err))
	}
	if strings.TrimSpace(analysis) == "" {
		return nil, s.done(apperrors.NewGenerationError(domain.MsgGenerationFailed, domain.ErrEmptyResponse))
	}

	s.logger.Info("Analysis completed", "stage", domain.StageDone, "resume_chars", len(resumeText), "analysis_chars", len(analysis))
	return &domain.AnalysisResult{
		Analysis:   analysis,
		ResumeText: resumeText,
	}, nil
}

// validate checks the credential, the document and the job description, in that order.
func (s *AnalysisService) validate(req domain.AnalysisRequest) *apperrors.AppError {
	if s.generator == nil {
		return apperrors.NewConfigurationError(domain.MsgMissingCredential, domain.ErrMissingCredential)
	}
	if len(req.Document) == 0 {
		return apperrors.NewValidationError(domain.MsgMissingDocument, domain.ErrMissingDocument)
	}
	if !IsPDF(req.Filename, req.Document) {
		return apperrors.NewValidationError(domain.MsgMissingDocument, domain.ErrNotPDF)
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return apperrors.NewValidationError(domain.MsgBlankJobDescription, domain.ErrBlankJobDescription)
	}
	return nil
}

// IsPDF accepts a document named *.pdf or whose leading bytes sniff as a PDF.
func IsPDF(filename string, document []byte) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	return http.DetectContentType(document) == "application/pdf"
}

func (s *AnalysisService) enter(stage domain.Stage, req domain.AnalysisRequest) {
	s.logger.Debug("Analysis stage", "stage", stage, "filename", req.Filename, "document_bytes", len(req.Document))
}

func (s *AnalysisService) done(appErr *apperrors.AppError) error {
	s.logger.Warn("Analysis failed", "stage", domain.StageDone, "type", appErr.Type, "error", appErr.Error())
	return appErr
}
