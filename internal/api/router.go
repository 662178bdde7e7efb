// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/lonestar/internal/config"
	"github.com/tomtom215/lonestar/internal/middleware"
)

// healthRateLimit is deliberately permissive so monitoring probes are
// never throttled.
const healthRateLimit = 1000

// Router assembles the chi routing tree over the handler set.
type Router struct {
	handlers *Handlers
	security config.SecurityConfig
}

// NewRouter creates a router for the handler set.
func NewRouter(handlers *Handlers, security config.SecurityConfig) *Router {
	return &Router{handlers: handlers, security: security}
}

// Setup builds the full routing tree with the global middleware stack.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(healthRateLimit, router.security.RateLimitWindow))
		r.Get("/live", router.handlers.HealthLive)
		r.Get("/ready", router.handlers.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if !router.security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(router.security.RateLimitReqs, router.security.RateLimitWindow))
		}
		r.Use(middleware.Prometheus)

		r.Get("/profiles", router.handlers.Profiles)
		r.Post("/profiles", router.handlers.CreateProfile)
		r.Post("/profiles/select", router.handlers.SelectProfile)
		r.Post("/profiles/signout", router.handlers.SignOut)
		r.Post("/profiles/watchlist", router.handlers.ToggleWatchlist)

		r.Get("/state", router.handlers.State)
		r.Post("/state/navigate", router.handlers.Navigate)
		r.Post("/state/filter", router.handlers.SetFilter)
		r.Post("/state/query", router.handlers.SetQuery)
		r.Post("/state/select", router.handlers.SelectItem)
		r.Delete("/state/select", router.handlers.ClearSelection)

		r.Get("/home", router.handlers.Home)
		r.Get("/content/{id}", router.handlers.Content)
		r.Post("/content/{id}/play", router.handlers.Play)

		r.Get("/search", router.handlers.SearchResults)
		r.Post("/video/resolve", router.handlers.ResolveVideo)

		r.Get("/downloads", router.handlers.Downloads)
		r.Post("/downloads/toggle", router.handlers.ToggleDownload)

		r.Get("/ws", router.handlers.WebSocket)
	})

	return r
}
