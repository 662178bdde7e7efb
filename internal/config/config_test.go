// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8560 {
		t.Errorf("port = %d, want 8560", cfg.Server.Port)
	}
	if cfg.Gemini.Enabled() {
		t.Error("gemini enabled with no API key")
	}
	if cfg.Gemini.Model != "gemini-3-flash-preview" {
		t.Errorf("model = %q", cfg.Gemini.Model)
	}
	if cfg.Search.Debounce != 400*time.Millisecond {
		t.Errorf("search debounce = %s, want 400ms", cfg.Search.Debounce)
	}
	if cfg.Search.PersonalizeDebounce != 800*time.Millisecond {
		t.Errorf("personalize debounce = %s, want 800ms", cfg.Search.PersonalizeDebounce)
	}
	if cfg.Server.Addr() != "0.0.0.0:8560" {
		t.Errorf("addr = %q", cfg.Server.Addr())
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000 from file", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn from env", cfg.Logging.Level)
	}
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("origins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("origins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

func TestUnknownEnvVarsIgnored(t *testing.T) {
	t.Setenv("SOME_UNRELATED_VAR", "true")
	if _, err := Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"missing store path", func(c *Config) { c.Store.Path = "" }, "STORE_PATH"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"zero debounce", func(c *Config) { c.Search.Debounce = 0 }, "SEARCH_DEBOUNCE"},
		{"bad rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"gemini without model", func(c *Config) { c.Gemini.APIKey = "k"; c.Gemini.Model = "" }, "GEMINI_MODEL"},
		{"gemini bad url", func(c *Config) { c.Gemini.APIKey = "k"; c.Gemini.BaseURL = "ftp://x" }, "GEMINI_BASE_URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate accepted bad config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %s", err, tt.want)
			}
		})
	}
}

func TestValidateAllowsInMemoryStoreWithoutPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Store.Path = ""
	cfg.Store.InMemory = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
