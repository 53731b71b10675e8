// Vortax - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vortax

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setupTestEnv replaces the process environment for the duration of a test.
func setupTestEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	saved := os.Environ()
	os.Clearenv()
	for k, v := range envVars {
		if err := os.Setenv(k, v); err != nil {
			t.Fatalf("failed to set env var %s: %v", k, err)
		}
	}
	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range saved {
			if k, v, ok := strings.Cut(kv, "="); ok {
				os.Setenv(k, v)
			}
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3857 {
		t.Errorf("Server.Port = %d, want 3857", cfg.Server.Port)
	}
	if cfg.Server.Environment != "production" {
		t.Errorf("Server.Environment = %q, want production", cfg.Server.Environment)
	}
	if cfg.TMDB.Timeout != 5*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 5s", cfg.TMDB.Timeout)
	}
	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDB.BaseURL = %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("TMDB.ImageBaseURL = %q", cfg.TMDB.ImageBaseURL)
	}
	if cfg.Resolver.DefaultContentType != "movie" {
		t.Errorf("Resolver.DefaultContentType = %q, want movie", cfg.Resolver.DefaultContentType)
	}
	if cfg.Resolver.MaxResults != 8 {
		t.Errorf("Resolver.MaxResults = %d, want 8", cfg.Resolver.MaxResults)
	}
	if cfg.Resolver.SourceLimit != 5 {
		t.Errorf("Resolver.SourceLimit = %d, want 5", cfg.Resolver.SourceLimit)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"TMDB_API_KEY", "tmdb.api_key"},
		{"TMDB_TIMEOUT", "tmdb.timeout"},
		{"TMDB_RPS", "tmdb.requests_per_second"},
		{"HTTP_PORT", "server.port"},
		{"PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"DUCKDB_PATH", "database.path"},
		{"SEED_CATALOG", "database.seed_catalog"},
		{"RESOLVER_DEFAULT_CONTENT_TYPE", "resolver.default_content_type"},
		{"RESOLVER_MAX_RESULTS", "resolver.max_results"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	t.Run("no config file exists", func(t *testing.T) {
		setupTestEnv(t, nil)
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		setupTestEnv(t, nil)
		path := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(path, []byte("server:\n  port: 1\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		defer os.Remove(path)

		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		custom := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(custom, []byte("{}"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		setupTestEnv(t, map[string]string{ConfigPathEnvVar: custom})

		if got := findConfigFile(); got != custom {
			t.Errorf("findConfigFile() = %q, want %q", got, custom)
		}
	})

	t.Run("CONFIG_PATH pointing nowhere falls back", func(t *testing.T) {
		setupTestEnv(t, map[string]string{ConfigPathEnvVar: "/non/existent/config.yaml"})
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	setupTestEnv(t, map[string]string{
		"TMDB_API_KEY":                  "test-key",
		"HTTP_PORT":                     "9000",
		"LOG_LEVEL":                     "debug",
		"RESOLVER_DEFAULT_CONTENT_TYPE": "tv",
		"RESOLVER_MAX_RESULTS":          "12",
		"TMDB_TIMEOUT":                  "2s",
		"CORS_ORIGINS":                  "https://a.example, https://b.example",
		"SEED_CATALOG":                  "false",
		"DUCKDB_CHECKPOINT_INTERVAL":    "90s",
	})

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.TMDB.APIKey != "test-key" {
		t.Errorf("TMDB.APIKey = %q, want test-key", cfg.TMDB.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Resolver.DefaultContentType != "tv" {
		t.Errorf("Resolver.DefaultContentType = %q, want tv", cfg.Resolver.DefaultContentType)
	}
	if cfg.Resolver.MaxResults != 12 {
		t.Errorf("Resolver.MaxResults = %d, want 12", cfg.Resolver.MaxResults)
	}
	if cfg.TMDB.Timeout != 2*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 2s", cfg.TMDB.Timeout)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Database.SeedCatalog {
		t.Error("Database.SeedCatalog should be false")
	}
	if cfg.Database.CheckpointInterval != 90*time.Second {
		t.Errorf("Database.CheckpointInterval = %v, want 90s", cfg.Database.CheckpointInterval)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default 0.0.0.0", cfg.Server.Host)
	}
}

func TestLoadWithKoanfConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vortax.yaml")
	content := `
server:
  port: 8088
  environment: development
tmdb:
  api_key: from-file
  timeout: 3s
resolver:
  default_content_type: tv
  source_limit: 3
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	setupTestEnv(t, map[string]string{
		ConfigPathEnvVar: path,
		"TMDB_API_KEY":   "from-env",
	})

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8088 {
		t.Errorf("Server.Port = %d, want 8088", cfg.Server.Port)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development environment from file")
	}
	if cfg.TMDB.APIKey != "from-env" {
		t.Errorf("TMDB.APIKey = %q, env should override file", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.Timeout != 3*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 3s", cfg.TMDB.Timeout)
	}
	if cfg.Resolver.SourceLimit != 3 {
		t.Errorf("Resolver.SourceLimit = %d, want 3", cfg.Resolver.SourceLimit)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing TMDB key",
			env:     map[string]string{},
			wantErr: "TMDB_API_KEY is required",
		},
		{
			name:    "TMDB disabled needs no key",
			env:     map[string]string{"TMDB_ENABLED": "false"},
			wantErr: "",
		},
		{
			name:    "bad default content type",
			env:     map[string]string{"TMDB_ENABLED": "false", "RESOLVER_DEFAULT_CONTENT_TYPE": "ambiguous"},
			wantErr: "RESOLVER_DEFAULT_CONTENT_TYPE",
		},
		{
			name:    "max results out of range",
			env:     map[string]string{"TMDB_ENABLED": "false", "RESOLVER_MAX_RESULTS": "0"},
			wantErr: "RESOLVER_MAX_RESULTS",
		},
		{
			name:    "bad environment",
			env:     map[string]string{"TMDB_ENABLED": "false", "ENVIRONMENT": "staging"},
			wantErr: "ENVIRONMENT",
		},
		{
			name:    "bad port",
			env:     map[string]string{"TMDB_ENABLED": "false", "HTTP_PORT": "70000"},
			wantErr: "HTTP_PORT",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"TMDB_ENABLED": "false", "LOG_LEVEL": "loud"},
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad TMDB base URL",
			env:     map[string]string{"TMDB_API_KEY": "k", "TMDB_BASE_URL": "ftp://tmdb"},
			wantErr: "TMDB_BASE_URL",
		},
		{
			name:    "checkpoint interval too short",
			env:     map[string]string{"TMDB_ENABLED": "false", "DUCKDB_CHECKPOINT_INTERVAL": "10ms"},
			wantErr: "DUCKDB_CHECKPOINT_INTERVAL",
		},
		{
			name:    "rate limit disabled skips window check",
			env:     map[string]string{"TMDB_ENABLED": "false", "DISABLE_RATE_LIMIT": "true", "RATE_LIMIT_REQUESTS": "0"},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnv(t, tt.env)
			_, err := LoadWithKoanf()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.themoviedb.org/3", false},
		{"http://localhost:8080", false},
		{"ftp://example.com", true},
		{"https://", true},
		{"https://example.com/3?api_key=x", true},
	}
	for _, tt := range tests {
		err := validateHTTPURL(tt.url, "TMDB_BASE_URL")
		if (err != nil) != tt.wantErr {
			t.Errorf("validateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestHasWildcardCORS(t *testing.T) {
	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://app.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin list should not be wildcard")
	}
}
