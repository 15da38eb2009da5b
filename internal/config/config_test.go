package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testSecret = "this-is-a-very-long-jwt-secret-for-testing-32+"

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

log:
  level: "debug"
  format: "text"

llm:
  provider: "OpenAI"
  api_key: "sk-test"
  base_url: "https://llm.example.com/v1"
  model: "gpt-4o-mini"
  max_tokens: 250
  timeout: "7s"

theme:
  timezone: "UTC"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 4
  auto_migrate: false

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  device_token_ttl: "720h"

rate_limit:
  generate_per_minute: 30
  burst: 3

metrics:
  enabled: true
  path: "/internal/metrics"
`

// validConfig returns a Config that passes validation.
func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080},
		Log:       LogConfig{Level: "info", Format: "json"},
		LLM:       LLMConfig{Provider: "anthropic", MaxTokens: 300, Timeout: 15 * time.Second},
		RateLimit: RateLimitConfig{GeneratePerMinute: 20, Burst: 5},
		Metrics:   MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// LLM
	if cfg.LLM.Provider != "openai" {
		t.Errorf("llm.provider = %q, want normalized %q", cfg.LLM.Provider, "openai")
	}
	if cfg.LLM.APIKey != "sk-test" || cfg.LLM.BaseURL != "https://llm.example.com/v1" {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.LLM.MaxTokens != 250 || cfg.LLM.Timeout != 7*time.Second {
		t.Errorf("llm.max_tokens/timeout = %d/%v", cfg.LLM.MaxTokens, cfg.LLM.Timeout)
	}

	// Theme
	if cfg.Theme.Location() != time.UTC {
		t.Errorf("theme location = %v, want UTC", cfg.Theme.Location())
	}

	// Database
	if !cfg.Database.Enabled() {
		t.Error("database should be enabled")
	}
	if cfg.Database.MaxConns != 4 {
		t.Errorf("database.max_conns = %d, want 4", cfg.Database.MaxConns)
	}
	if cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be false")
	}

	// Auth
	if cfg.Auth.DeviceTokenTTL != 720*time.Hour {
		t.Errorf("auth.device_token_ttl = %v", cfg.Auth.DeviceTokenTTL)
	}
	if cfg.Auth.JWTIssuer != "recoverylock" {
		t.Errorf("auth.jwt_issuer = %q (default)", cfg.Auth.JWTIssuer)
	}

	// Rate limit
	if cfg.RateLimit.GeneratePerMinute != 30 || cfg.RateLimit.Burst != 3 {
		t.Errorf("rate_limit = %+v", cfg.RateLimit)
	}

	// Metrics
	if cfg.Metrics.Path != "/internal/metrics" {
		t.Errorf("metrics.path = %q", cfg.Metrics.Path)
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LLM_API_KEY", "sk-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.LLM.APIKey != "sk-env" {
		t.Errorf("llm.api_key = %q, want ENV override", cfg.LLM.APIKey)
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("LLM_API_KEY", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "anthropic" || cfg.LLM.MaxTokens != 300 || cfg.LLM.Timeout != 15*time.Second {
		t.Errorf("llm defaults = %+v", cfg.LLM)
	}
	if cfg.LLM.APIKey != "" {
		t.Error("missing api key must not be an error")
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled without a DSN")
	}
	if cfg.Theme.Location() != time.Local {
		t.Error("theme location should default to Local")
	}
	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should default to true")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics defaults = %+v", cfg.Metrics)
	}
}

func TestLoad_SwitchesTurnedOff(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{
			name: "yaml",
			yaml: "metrics:\n  enabled: false\ndatabase:\n  auto_migrate: false\n",
		},
		{
			name: "env",
			yaml: "log:\n  level: info\n",
			env:  map[string]string{"METRICS_ENABLED": "false", "DATABASE_AUTO_MIGRATE": "false"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), tt.yaml))
			t.Setenv("DATABASE_DSN", "")
			for _, k := range []string{"METRICS_ENABLED", "DATABASE_AUTO_MIGRATE"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Metrics.Enabled {
				t.Error("metrics.enabled = true, want false")
			}
			if cfg.Database.AutoMigrate {
				t.Error("database.auto_migrate = true, want false")
			}
		})
	}
}

func TestLoadFrom_NotFound(t *testing.T) {
	if _, err := LoadFrom("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config path")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_JWTSecretOnlyRequiredWithDatabase(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("no database: unexpected error: %v", err)
	}

	cfg.Database.DSN = "postgres://localhost/db"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty JWT secret with database")
	}

	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}

	cfg.Auth.JWTSecret = testSecret
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"provider", func(c *Config) { c.LLM.Provider = "bard" }, "provider"},
		{"max tokens", func(c *Config) { c.LLM.MaxTokens = 0 }, "max_tokens"},
		{"timeout", func(c *Config) { c.LLM.Timeout = 0 }, "timeout"},
		{"timezone", func(c *Config) { c.Theme.Timezone = "Nowhere/Town" }, "theme"},
		{"rate limit", func(c *Config) { c.RateLimit.GeneratePerMinute = -1 }, "rate_limit"},
		{"metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"metrics path shadows health", func(c *Config) { c.Metrics.Path = "/health" }, "already an API route"},
		{"metrics path shadows stats", func(c *Config) { c.Metrics.Path = "/checkins/stats" }, "already an API route"},
		{"metrics path root", func(c *Config) { c.Metrics.Path = "/" }, "already an API route"},
		{"metrics path wildcard", func(c *Config) { c.Metrics.Path = "/m/{id}" }, "literal path"},
		{"metrics path unclean", func(c *Config) { c.Metrics.Path = "/ops/../theme" }, "clean path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_MetricsPathIgnoredWhenDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.Metrics.Enabled = false
	cfg.Metrics.Path = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
