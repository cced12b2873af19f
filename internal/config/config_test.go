package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var configEnvKeys = []string{
	"PORT", "SERVER_PORT", "MAX_FILE_SIZE", "LOG_LEVEL", "LOG_FORMAT",
	"LLM_PROVIDER", "GOOGLE_API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL",
	"GEMINI_BASE_URL", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
	"PDF_ENGINE", "ALLOWED_ORIGINS", "CONFIG_FILE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetLogFormat() != "text" {
		t.Fatalf("expected default log format text, got %s", cfg.GetLogFormat())
	}
	if cfg.GetLLMProvider() != ProviderGemini {
		t.Fatalf("expected default provider gemini, got %s", cfg.GetLLMProvider())
	}
	if cfg.GetAPIKey() != "" {
		t.Fatalf("expected empty api key, got %s", cfg.GetAPIKey())
	}
	if cfg.GetGeminiModel() != defaultGeminiModel {
		t.Fatalf("expected default gemini model, got %s", cfg.GetGeminiModel())
	}
	if cfg.GetPDFEngine() != EngineLedongthuc {
		t.Fatalf("expected default pdf engine, got %s", cfg.GetPDFEngine())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("PDF_ENGINE", "MuPDF")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetLogFormat() != "json" {
		t.Fatalf("expected log format json, got %s", cfg.GetLogFormat())
	}
	if cfg.GetAPIKey() != "google-key" {
		t.Fatalf("expected google-key, got %s", cfg.GetAPIKey())
	}
	if cfg.GetGeminiModel() != "gemini-1.5-pro" {
		t.Fatalf("expected gemini-1.5-pro, got %s", cfg.GetGeminiModel())
	}
	if cfg.GetPDFEngine() != EngineMuPDF {
		t.Fatalf("expected mupdf engine, got %s", cfg.GetPDFEngine())
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.GetAllowedOrigins(), want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.GetAllowedOrigins())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("GEMINI_API_KEY", "fallback-key")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetAPIKey() != "fallback-key" {
		t.Fatalf("expected GEMINI_API_KEY fallback, got %s", cfg.GetAPIKey())
	}
}

func TestNewConfig_OpenAIProviderUsesOpenAIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetAPIKey() != "openai-key" {
		t.Fatalf("expected openai-key, got %s", cfg.GetAPIKey())
	}
	if cfg.GetOpenAIBaseURL() != defaultOpenAIBaseURL {
		t.Fatalf("expected default openai base url, got %s", cfg.GetOpenAIBaseURL())
	}
}

func TestNewConfig_RejectsUnknownValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "llama")
	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error for unknown provider")
	}

	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("PDF_ENGINE", "ocr")
	if _, err := NewConfig(); err == nil {
		t.Fatalf("expected error for unknown pdf engine")
	}
}

func TestLoad_YAMLFileWithEnvExpansionAndOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_GEMINI_KEY", "from-file-env")
	t.Setenv("LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "8181"
  max_file_size: 2048
log:
  level: debug
llm:
  provider: gemini
  gemini:
    api_key: ${TEST_GEMINI_KEY}
    model: gemini-file-model
pdf:
  engine: mupdf
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetServerPort() != "8181" {
		t.Fatalf("expected port from file, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != 2048 {
		t.Fatalf("expected max file size from file, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "warn" {
		t.Fatalf("expected env to override file log level, got %s", cfg.GetLogLevel())
	}
	if cfg.GetAPIKey() != "from-file-env" {
		t.Fatalf("expected expanded api key, got %s", cfg.GetAPIKey())
	}
	if cfg.GetGeminiModel() != "gemini-file-model" {
		t.Fatalf("expected model from file, got %s", cfg.GetGeminiModel())
	}
	if cfg.GetPDFEngine() != EngineMuPDF {
		t.Fatalf("expected engine from file, got %s", cfg.GetPDFEngine())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
