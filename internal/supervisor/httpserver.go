// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package supervisor

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/lonestar/internal/logging"
)

// ServiceFunc adapts a run function to suture.Service.
type ServiceFunc func(ctx context.Context) error

// Serve implements suture.Service.
func (f ServiceFunc) Serve(ctx context.Context) error {
	return f(ctx)
}

// HTTPServer runs an http.Server as a supervised service with
// graceful shutdown on context cancellation.
type HTTPServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewHTTPServer wraps the handler in a supervised HTTP server.
func NewHTTPServer(addr string, handler http.Handler, readTimeout, writeTimeout, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Serve implements suture.Service. It blocks until the listener fails
// or ctx is cancelled, draining in-flight requests on the way out.
func (s *HTTPServer) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("HTTP server shutdown failed")
		}
		return ctx.Err()
	}
}
