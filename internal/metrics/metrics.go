// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package metrics exposes Prometheus instrumentation for:
//   - API endpoint latency and throughput
//   - outbound AI suggestion calls and their circuit breaker
//   - store writes and debounce supersession
//   - websocket client count
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lonestar_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lonestar_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AI suggestion call metrics
	AIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lonestar_ai_requests_total",
			Help: "Total number of outbound AI suggestion calls",
		},
		[]string{"operation", "outcome"}, // operation: search|personalize, outcome: success|error|rejected
	)

	AIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lonestar_ai_request_duration_seconds",
			Help:    "Duration of outbound AI suggestion calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"operation"},
	)

	AIInvalidIDsDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lonestar_ai_invalid_ids_discarded_total",
			Help: "Total number of AI-suggested ids rejected because they do not exist in the catalog",
		},
	)

	// Circuit breaker metrics (AI upstream)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "lonestar_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lonestar_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Session scheduler metrics
	DebounceSuperseded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lonestar_debounce_superseded_total",
			Help: "Total number of debounced tasks superseded before or after dispatch",
		},
		[]string{"kind"}, // kind: search|personalize
	)

	// Store metrics
	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lonestar_store_writes_total",
			Help: "Total number of collection document rewrites",
		},
		[]string{"collection"}, // collection: profiles|downloads
	)

	// WebSocket metrics
	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lonestar_websocket_clients",
			Help: "Current number of connected websocket clients",
		},
	)
)
