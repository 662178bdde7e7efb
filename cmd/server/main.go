// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package main is the entry point for the Lonestar server.
//
// Lonestar is the state engine behind a streaming front end: it owns
// viewer profiles, the content catalog, offline downloads and the
// viewing session, and augments search and recommendations through a
// generative-text API. The browser is a thin renderer over this API.
//
// The server initializes in this order:
//
//  1. Configuration: Koanf v2 layered sources (env > file > defaults)
//  2. Store: embedded Badger database for profiles and downloads
//  3. Catalog: the built-in content library
//  4. Suggester: Gemini client if GEMINI_API_KEY is set, disabled otherwise
//  5. Session manager and WebSocket hub
//  6. Supervisor tree: messaging layer (hub) and API layer (HTTP server)
//
// Graceful shutdown is driven by SIGINT/SIGTERM: the HTTP server
// drains in-flight requests, the hub disconnects its clients, and the
// store closes last.
//
// Example (local development, no AI):
//
//	export STORE_IN_MEMORY=true
//	export LOG_FORMAT=console
//	./lonestar
//
// With AI suggestions:
//
//	export GEMINI_API_KEY=your-key
//	export STORE_PATH=/data/lonestar
//	./lonestar
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/lonestar/internal/api"
	"github.com/tomtom215/lonestar/internal/catalog"
	"github.com/tomtom215/lonestar/internal/config"
	"github.com/tomtom215/lonestar/internal/logging"
	"github.com/tomtom215/lonestar/internal/session"
	"github.com/tomtom215/lonestar/internal/store"
	"github.com/tomtom215/lonestar/internal/suggest"
	"github.com/tomtom215/lonestar/internal/supervisor"
	ws "github.com/tomtom215/lonestar/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("store_path", cfg.Store.Path).
		Bool("store_in_memory", cfg.Store.InMemory).
		Bool("ai_enabled", cfg.Gemini.Enabled()).
		Msg("Starting Lonestar")

	var db *badger.DB
	if cfg.Store.InMemory {
		db, err = store.OpenInMemory()
	} else {
		db, err = store.Open(cfg.Store.Path)
	}
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	profiles, err := store.NewProfileStore(db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load profiles")
	}
	downloads, err := store.NewDownloadStore(db)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load downloads")
	}
	var cat *catalog.Store
	if cfg.Catalog.Path != "" {
		cat, err = catalog.NewFileStore(cfg.Catalog.Path)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog file")
		}
	} else {
		cat = catalog.NewSeedStore()
	}
	logging.Info().Int("items", cat.Len()).Msg("Catalog loaded")

	var suggester suggest.Suggester
	if cfg.Gemini.Enabled() {
		suggester = suggest.NewGeminiClient(suggest.Config{
			APIKey:            cfg.Gemini.APIKey,
			Model:             cfg.Gemini.Model,
			BaseURL:           cfg.Gemini.BaseURL,
			Timeout:           cfg.Gemini.Timeout,
			RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
		})
		logging.Info().Str("model", cfg.Gemini.Model).Msg("AI suggestions enabled")
	} else {
		suggester = suggest.Disabled{}
		logging.Info().Msg("AI suggestions disabled (no API key)")
	}

	hub := ws.NewHub()
	sess := session.NewManager(cat, profiles, downloads, suggester, hub, session.Config{
		SearchDebounce:      cfg.Search.Debounce,
		PersonalizeDebounce: cfg.Search.PersonalizeDebounce,
	})
	defer sess.Close()

	handlers := api.NewHandlers(sess, profiles, cat, hub, db)
	router := api.NewRouter(handlers, cfg.Security)

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(supervisor.ServiceFunc(hub.RunWithContext))
	tree.AddAPIService(supervisor.NewHTTPServer(
		cfg.Server.Addr(),
		router.Setup(),
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		cfg.Server.ShutdownTimeout,
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree failed")
	}
	logging.Info().Msg("Lonestar stopped")
}
