package config

import (
	"context"
	"fmt"

	"ats-resume-optimizer/internal/domain"
	"ats-resume-optimizer/internal/infra/gemini"
	"ats-resume-optimizer/internal/infra/openai"
	"ats-resume-optimizer/internal/service"
	"ats-resume-optimizer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	AnalysisService domain.AnalysisService
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}
	return NewContainerFromConfig(ctx, cfg, logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat()))
}

// NewContainerFromConfig builds the pipeline from an already loaded config.
// A missing API key is not an error: the service starts and reports it is not
// ready.
func NewContainerFromConfig(ctx context.Context, cfg domain.Config, appLogger domain.Logger) (*Container, error) {
	generator, err := newGenerator(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	analysis := service.NewAnalysisService(
		NewExtractor(cfg, appLogger),
		service.NewTextNormalizer(),
		service.NewPromptBuilder(nil),
		generator,
		appLogger,
	)

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		AnalysisService: analysis,
	}, nil
}

// NewExtractor returns the PDF engine selected by PDF_ENGINE.
func NewExtractor(cfg domain.Config, appLogger domain.Logger) domain.TextExtractor {
	if cfg.GetPDFEngine() == EngineMuPDF {
		return service.NewMuPDFExtractor(appLogger)
	}
	return service.NewPlainTextExtractor(appLogger)
}

// newGenerator returns nil, nil when no API key is configured.
func newGenerator(ctx context.Context, cfg domain.Config, appLogger domain.Logger) (domain.TextGenerator, error) {
	apiKey := cfg.GetAPIKey()
	if apiKey == "" {
		appLogger.Warn("No API key configured, analysis requests will be rejected", "provider", cfg.GetLLMProvider())
		return nil, nil
	}

	switch cfg.GetLLMProvider() {
	case ProviderOpenAI:
		appLogger.Info("Using OpenAI-compatible provider", "model", cfg.GetOpenAIModel())
		return openai.NewClient(cfg.GetOpenAIBaseURL(), apiKey, cfg.GetOpenAIModel(), nil, appLogger), nil
	default:
		client, err := gemini.NewClient(ctx, gemini.Options{
			APIKey:  apiKey,
			Model:   cfg.GetGeminiModel(),
			BaseURL: cfg.GetGeminiBaseURL(),
		}, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini provider: %w", err)
		}
		appLogger.Info("Using Gemini provider", "model", cfg.GetGeminiModel())
		return client, nil
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetAnalysisService returns the analysis pipeline
func (c *Container) GetAnalysisService() domain.AnalysisService {
	return c.AnalysisService
}
