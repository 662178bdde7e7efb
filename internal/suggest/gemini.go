// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package suggest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/lonestar/internal/logging"
	"github.com/tomtom215/lonestar/internal/metrics"
	"github.com/tomtom215/lonestar/internal/models"
)

// ErrRateLimited indicates the outbound limiter rejected the call before
// it was dispatched.
var ErrRateLimited = errors.New("suggestion call rate limited")

// Config holds Gemini client configuration.
type Config struct {
	// APIKey authenticates against the generative-text API.
	APIKey string

	// Model is the model identifier, e.g. "gemini-3-flash-preview".
	Model string

	// BaseURL is the API root. Overridable for tests.
	BaseURL string

	// Timeout bounds a single generateContent round trip.
	Timeout time.Duration

	// RequestsPerMinute throttles outbound calls. 0 disables throttling.
	RequestsPerMinute int
}

// DefaultConfig returns production defaults (API key must still be set).
func DefaultConfig() Config {
	return Config{
		Model:             "gemini-3-flash-preview",
		BaseURL:           "https://generativelanguage.googleapis.com",
		Timeout:           15 * time.Second,
		RequestsPerMinute: 30,
	}
}

// GeminiClient implements Suggester over the generateContent REST endpoint.
// Calls are wrapped in a circuit breaker so a dead or slow upstream stops
// being hammered, and throttled by an outbound rate limiter. Both reject
// paths surface as errors that callers degrade on.
type GeminiClient struct {
	cfg     Config
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]string]
	limiter *rate.Limiter
}

// NewGeminiClient creates a client for the generative-text API.
func NewGeminiClient(cfg Config) *GeminiClient {
	def := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	const breakerName = "gemini"
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	breaker := gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), cfg.RequestsPerMinute)
	}

	return &GeminiClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: breaker,
		limiter: limiter,
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// SearchMatches implements Suggester.
func (c *GeminiClient) SearchMatches(ctx context.Context, query string, library []models.ContentItem) ([]string, error) {
	return c.generate(ctx, "search", searchPrompt(query, library), library)
}

// PersonalPicks implements Suggester.
func (c *GeminiClient) PersonalPicks(ctx context.Context, profile *models.Profile, library []models.ContentItem) ([]string, error) {
	return c.generate(ctx, "personalize", personalPrompt(profile, library), library)
}

// generateContent wire types. The response is treated as untrusted text;
// only the first candidate's first text part is read.
type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) generate(ctx context.Context, operation, prompt string, library []models.ContentItem) ([]string, error) {
	if c.limiter != nil && !c.limiter.Allow() {
		metrics.AIRequestsTotal.WithLabelValues(operation, "rejected").Inc()
		return nil, ErrRateLimited
	}

	start := time.Now()
	ids, err := c.breaker.Execute(func() ([]string, error) {
		text, err := c.generateContent(ctx, prompt)
		if err != nil {
			return nil, err
		}
		return ParseIDList(text, library), nil
	})
	metrics.AIRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.AIRequestsTotal.WithLabelValues(operation, outcome).Inc()
		return nil, err
	}

	metrics.AIRequestsTotal.WithLabelValues(operation, "success").Inc()
	return ids, nil
}

func (c *GeminiClient) generateContent(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("generateContent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for the log, then discard.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		logging.Debug().Int("status", resp.StatusCode).Bytes("body", snippet).Msg("generateContent non-200")
		return "", fmt.Errorf("generateContent: unexpected status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
