// Package llm adapts hosted text-generation APIs to a single Complete call.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Supported providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

// Default models per provider.
const (
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultMaxTokens      = 300
)

var (
	// ErrNoCredential is returned by New when no API key is configured.
	ErrNoCredential = errors.New("llm: no api key configured")
	// ErrEmptyResponse is returned when the provider answers without text.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Config selects and configures a provider.
type Config struct {
	Provider  string
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

type completeFunc func(ctx context.Context, prompt string) (string, error)

// Client sends single-prompt completions to one provider. Exactly one request
// is made per call.
type Client struct {
	provider string
	model    string
	complete completeFunc
	log      *slog.Logger
}

// New builds a Client for cfg.Provider. It returns ErrNoCredential when
// cfg.APIKey is empty.
func New(ctx context.Context, log *slog.Logger, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNoCredential
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderAnthropic
	}

	var (
		fn  completeFunc
		err error
	)
	switch provider {
	case ProviderAnthropic:
		cfg.Model = orDefault(cfg.Model, DefaultAnthropicModel)
		fn = newAnthropic(cfg)
	case ProviderOpenAI:
		cfg.Model = orDefault(cfg.Model, DefaultOpenAIModel)
		fn, err = newOpenAI(cfg)
	case ProviderGemini:
		cfg.Model = orDefault(cfg.Model, DefaultGeminiModel)
		fn, err = newGemini(ctx, cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("llm: init %s: %w", provider, err)
	}

	return &Client{
		provider: provider,
		model:    cfg.Model,
		complete: fn,
		log:      log.With("adapter", "llm", "provider", provider),
	}, nil
}

// Provider returns the provider name.
func (c *Client) Provider() string { return c.provider }

// Model returns the model identifier sent with each request.
func (c *Client) Model() string { return c.model }

// Complete sends prompt as a single user message and returns the text answer.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := c.complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("llm %s: %w", c.provider, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("llm %s: %w", c.provider, ErrEmptyResponse)
	}

	c.log.DebugContext(ctx, "completion received",
		slog.String("model", c.model),
		slog.Int("chars", len(text)),
		slog.Duration("latency", time.Since(start)),
	)
	return text, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
