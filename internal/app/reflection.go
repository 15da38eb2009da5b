package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/recoverylock-backend/internal/adapter/llm"
	"github.com/heartmarshall/recoverylock-backend/internal/config"
	"github.com/heartmarshall/recoverylock-backend/internal/service/reflection"
)

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewGenerator builds the remote text generator. It returns a nil completer
// and no error when no API key is configured.
func NewGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (completer, error) {
	client, err := llm.New(ctx, logger, llm.Config{
		Provider:  cfg.Provider,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	switch {
	case errors.Is(err, llm.ErrNoCredential):
		logger.Warn("no LLM API key configured, reflections will use the fallback bank")
		return nil, nil
	case err != nil:
		return nil, err
	}

	logger.Info("llm generator ready",
		slog.String("provider", client.Provider()),
		slog.String("model", client.Model()),
	)
	return client, nil
}

// NewReflectionService wires the generator into a reflection service with
// the configured timeout and default location.
func NewReflectionService(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...reflection.Option) (*reflection.Service, error) {
	gen, err := NewGenerator(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	base := []reflection.Option{
		reflection.WithTimeout(cfg.LLM.Timeout),
		reflection.WithLocation(cfg.Theme.Location()),
	}
	return reflection.NewService(logger, gen, append(base, opts...)...), nil
}
