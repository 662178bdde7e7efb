// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package config loads Lonestar configuration from three layered
// sources with clear precedence: environment variables over an
// optional YAML file over built-in defaults.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Gemini   GeminiConfig   `koanf:"gemini"`
	Search   SearchConfig   `koanf:"search"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StoreConfig controls the embedded Badger database.
type StoreConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// CatalogConfig points at an optional YAML catalog file. When Path is
// empty the compiled-in seed catalog is used.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// GeminiConfig controls the AI suggestion client. With no API key the
// service runs with AI features disabled and purely local behavior.
type GeminiConfig struct {
	APIKey            string        `koanf:"api_key"`
	Model             string        `koanf:"model"`
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerMinute int           `koanf:"requests_per_minute"`
}

// Enabled reports whether the AI client should be constructed.
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}

// SearchConfig tunes the debounce windows for AI-backed work.
type SearchConfig struct {
	Debounce            time.Duration `koanf:"debounce"`
	PersonalizeDebounce time.Duration `koanf:"personalize_debounce"`
}

// SecurityConfig controls the outer HTTP protections.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateGemini(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateStore() error {
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH is required unless STORE_IN_MEMORY=true")
	}
	return nil
}

func (c *Config) validateGemini() error {
	if !c.Gemini.Enabled() {
		return nil
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL is required when GEMINI_API_KEY is set")
	}
	if err := validateHTTPURL(c.Gemini.BaseURL, "GEMINI_BASE_URL"); err != nil {
		return err
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("GEMINI_TIMEOUT must be positive, got %s", c.Gemini.Timeout)
	}
	if c.Gemini.RequestsPerMinute < 1 {
		return fmt.Errorf("GEMINI_REQUESTS_PER_MINUTE must be at least 1, got %d", c.Gemini.RequestsPerMinute)
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.Debounce <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE must be positive, got %s", c.Search.Debounce)
	}
	if c.Search.PersonalizeDebounce <= 0 {
		return fmt.Errorf("SEARCH_PERSONALIZE_DEBOUNCE must be positive, got %s", c.Search.PersonalizeDebounce)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func validateHTTPURL(raw, name string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is invalid: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", name)
	}
	return nil
}
