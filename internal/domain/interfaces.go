package domain

import "context"

// TextExtractor turns a PDF document into raw text, pages joined by newlines.
// A parser failure is reported as an error wrapping ErrExtractionFailed and
// never comes with partial text.
type TextExtractor interface {
	Extract(ctx context.Context, document []byte) (string, error)
}

// TextNormalizer canonicalizes extracted text for prompting.
type TextNormalizer interface {
	Normalize(text string) string
}

// PromptBuilder fills the instruction template with the résumé text and the
// job description.
type PromptBuilder interface {
	Build(resumeText, jobDescription string) (string, error)
}

// TextGenerator sends a prompt to a hosted model and returns its text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// AnalysisService runs one request through the whole pipeline.
type AnalysisService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
	Ready() bool
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetLLMProvider() string
	GetAPIKey() string
	GetGeminiModel() string
	GetGeminiBaseURL() string
	GetOpenAIBaseURL() string
	GetOpenAIModel() string
	GetPDFEngine() string
	GetAllowedOrigins() []string
}
