package gemini

import (
	"context"
	"fmt"
	"net/http"

	"ats-resume-optimizer/internal/domain"

	"google.golang.org/genai"
)

// Client implements domain.TextGenerator against the Gemini API.
type Client struct {
	client *genai.Client
	model  string
	logger domain.Logger
}

// Options configures a Client. BaseURL and HTTPClient are optional.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Gemini client authenticated with an API key.
func NewClient(ctx context.Context, opts Options, logger domain.Logger) (*Client, error) {
	if opts.APIKey == "" {
		return nil, domain.ErrMissingCredential
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client, model: opts.Model, logger: logger}, nil
}

// Generate sends prompt as a single user turn and returns the response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("Calling Gemini", "model", c.model, "prompt_chars", len(prompt))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked the prompt: %s", resp.PromptFeedback.BlockReason)
	}

	return resp.Text(), nil
}
