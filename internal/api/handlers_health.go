// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package api

import (
	"net/http"
)

// HealthLive reports process liveness.
func (h *Handlers) HealthLive(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]string{"status": "alive"})
}

// HealthReady reports whether the service can serve traffic. The
// embedded store is the only hard dependency; the AI layer degrades
// gracefully and never gates readiness.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.db == nil || h.db.IsClosed() {
		rw.Error(http.StatusServiceUnavailable, ErrCodeInternalError, "Store unavailable")
		return
	}
	rw.Success(map[string]interface{}{
		"status":  "ready",
		"catalog": h.catalog.Len(),
	})
}
