package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"ats-resume-optimizer/internal/domain"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	EngineLedongthuc = "pdf"
	EngineMuPDF      = "mupdf"

	defaultMaxFileSize   int64 = 10 * 1024 * 1024
	defaultGeminiModel         = "gemini-2.0-flash"
	defaultOpenAIBaseURL       = "https://api.openai.com/v1"
	defaultOpenAIModel         = "gpt-4o-mini"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	LogFormat      string
	LLMProvider    string
	GoogleAPIKey   string
	OpenAIAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	OpenAIBaseURL  string
	OpenAIModel    string
	PDFEngine      string
	AllowedOrigins []string
}

// fileConfig is the optional YAML layer (snake_case keys, ${VAR} expansion).
type fileConfig struct {
	Server struct {
		Port           string   `yaml:"port"`
		MaxFileSize    int64    `yaml:"max_file_size"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	LLM struct {
		Provider string `yaml:"provider"`
		Gemini   struct {
			APIKey  string `yaml:"api_key"`
			Model   string `yaml:"model"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"gemini"`
		OpenAI struct {
			APIKey  string `yaml:"api_key"`
			Model   string `yaml:"model"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"openai"`
	} `yaml:"llm"`
	PDF struct {
		Engine string `yaml:"engine"`
	} `yaml:"pdf"`
}

// NewConfig builds the configuration from defaults, the optional CONFIG_FILE
// and the environment, in increasing priority.
func NewConfig() (domain.Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

// Load is NewConfig with an explicit YAML path. An empty path skips the file layer.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		ServerPort:     "8080",
		MaxFileSize:    defaultMaxFileSize,
		LogLevel:       "info",
		LogFormat:      "text",
		LLMProvider:    ProviderGemini,
		GeminiModel:    defaultGeminiModel,
		OpenAIBaseURL:  defaultOpenAIBaseURL,
		OpenAIModel:    defaultOpenAIModel,
		PDFEngine:      EngineLedongthuc,
		AllowedOrigins: []string{"http://localhost:8080"},
	}

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	setIfNotEmpty(&c.ServerPort, fc.Server.Port)
	if fc.Server.MaxFileSize > 0 {
		c.MaxFileSize = fc.Server.MaxFileSize
	}
	if len(fc.Server.AllowedOrigins) > 0 {
		c.AllowedOrigins = fc.Server.AllowedOrigins
	}
	setIfNotEmpty(&c.LogLevel, fc.Log.Level)
	setIfNotEmpty(&c.LogFormat, fc.Log.Format)
	setIfNotEmpty(&c.LLMProvider, fc.LLM.Provider)
	setIfNotEmpty(&c.GoogleAPIKey, fc.LLM.Gemini.APIKey)
	setIfNotEmpty(&c.GeminiModel, fc.LLM.Gemini.Model)
	setIfNotEmpty(&c.GeminiBaseURL, fc.LLM.Gemini.BaseURL)
	setIfNotEmpty(&c.OpenAIAPIKey, fc.LLM.OpenAI.APIKey)
	setIfNotEmpty(&c.OpenAIModel, fc.LLM.OpenAI.Model)
	setIfNotEmpty(&c.OpenAIBaseURL, fc.LLM.OpenAI.BaseURL)
	setIfNotEmpty(&c.PDFEngine, fc.PDF.Engine)
	return nil
}

func (c *AppConfig) applyEnv() {
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	c.ServerPort = getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", c.ServerPort))
	c.MaxFileSize = getEnvInt64OrDefault("MAX_FILE_SIZE", c.MaxFileSize)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault("LOG_FORMAT", c.LogFormat)
	c.LLMProvider = strings.ToLower(getEnvOrDefault("LLM_PROVIDER", c.LLMProvider))
	c.GoogleAPIKey = getEnvOrDefault("GOOGLE_API_KEY", getEnvOrDefault("GEMINI_API_KEY", c.GoogleAPIKey))
	c.GeminiModel = getEnvOrDefault("GEMINI_MODEL", c.GeminiModel)
	c.GeminiBaseURL = getEnvOrDefault("GEMINI_BASE_URL", c.GeminiBaseURL)
	c.OpenAIAPIKey = getEnvOrDefault("OPENAI_API_KEY", c.OpenAIAPIKey)
	c.OpenAIBaseURL = getEnvOrDefault("OPENAI_BASE_URL", c.OpenAIBaseURL)
	c.OpenAIModel = getEnvOrDefault("OPENAI_MODEL", c.OpenAIModel)
	c.PDFEngine = strings.ToLower(getEnvOrDefault("PDF_ENGINE", c.PDFEngine))
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}
}

func (c *AppConfig) validate() error {
	switch c.LLMProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported llm provider %q", c.LLMProvider)
	}
	switch c.PDFEngine {
	case EngineLedongthuc, EngineMuPDF:
	default:
		return fmt.Errorf("unsupported pdf engine %q", c.PDFEngine)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.MaxFileSize)
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns "text" or "json"
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetLLMProvider returns the selected text-generation backend
func (c *AppConfig) GetLLMProvider() string {
	return c.LLMProvider
}

// GetAPIKey returns the credential of the selected provider. Empty means unconfigured.
func (c *AppConfig) GetAPIKey() string {
	if c.LLMProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GoogleAPIKey
}

// GetGeminiModel returns the Gemini model name
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetGeminiBaseURL returns the Gemini endpoint override, empty for the SDK default
func (c *AppConfig) GetGeminiBaseURL() string {
	return c.GeminiBaseURL
}

// GetOpenAIBaseURL returns the OpenAI-compatible API root
func (c *AppConfig) GetOpenAIBaseURL() string {
	return c.OpenAIBaseURL
}

// GetOpenAIModel returns the OpenAI model name
func (c *AppConfig) GetOpenAIModel() string {
	return c.OpenAIModel
}

// GetPDFEngine returns the extraction engine name
func (c *AppConfig) GetPDFEngine() string {
	return c.PDFEngine
}

// GetAllowedOrigins returns the CORS origins for the JSON API
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
