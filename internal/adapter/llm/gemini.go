package llm

import (
	"context"

	"google.golang.org/genai"
)

func newGemini(ctx context.Context, cfg Config) (completeFunc, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, cfg.Model, genai.Text(prompt), &genai.GenerateContentConfig{
			MaxOutputTokens: int32(cfg.MaxTokens),
		})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}, nil
}
