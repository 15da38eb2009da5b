package config

import (
	"fmt"
	"path"
	"slices"
	"strings"
	"time"
)

var (
	knownProviders  = []string{"anthropic", "openai", "gemini"}
	knownLogFormats = []string{"json", "text"}
)

// ReservedPaths are served by the API itself; the metrics endpoint may not
// shadow any of them.
var ReservedPaths = []string{
	"/",
	"/live",
	"/ready",
	"/health",
	"/generate",
	"/theme",
	"/wisdom",
	"/devices",
	"/checkins",
	"/checkins/stats",
}

func validateMetricsPath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("must start with / (got %q)", p)
	}
	if strings.ContainsAny(p, "{} \t") {
		return fmt.Errorf("must be a literal path (got %q)", p)
	}
	if path.Clean(p) != p {
		return fmt.Errorf("must be a clean path (got %q)", p)
	}
	if slices.Contains(ReservedPaths, p) {
		return fmt.Errorf("%q is already an API route", p)
	}
	return nil
}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if !slices.Contains(knownLogFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", knownLogFormats, c.Log.Format)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.Theme.validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	// Device tokens only exist alongside the history store.
	if c.Database.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters when database.dsn is set (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.GeneratePerMinute < 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be >= 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}

	if c.Metrics.Enabled {
		if err := validateMetricsPath(c.Metrics.Path); err != nil {
			return fmt.Errorf("metrics.path: %w", err)
		}
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	if !slices.Contains(knownProviders, l.Provider) {
		return fmt.Errorf("provider must be one of %v (got %q)", knownProviders, l.Provider)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	return nil
}

func (t ThemeConfig) validate() error {
	if t.Timezone == "" {
		return nil
	}
	if _, err := time.LoadLocation(t.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}
