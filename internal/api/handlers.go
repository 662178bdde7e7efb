// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package api

import (
	"errors"
	"net/http"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/lonestar/internal/catalog"
	"github.com/tomtom215/lonestar/internal/logging"
	"github.com/tomtom215/lonestar/internal/session"
	"github.com/tomtom215/lonestar/internal/store"
	"github.com/tomtom215/lonestar/internal/validation"
	"github.com/tomtom215/lonestar/internal/websocket"
)

// maxBodyBytes bounds request bodies; every mutating request here is
// a small JSON document.
const maxBodyBytes = 1 << 20

// Handlers holds the dependencies of all HTTP handlers.
type Handlers struct {
	session  *session.Manager
	profiles *store.ProfileStore
	catalog  *catalog.Store
	hub      *websocket.Hub
	db       *badger.DB
}

// NewHandlers wires the handler set.
func NewHandlers(sess *session.Manager, profiles *store.ProfileStore, cat *catalog.Store, hub *websocket.Hub, db *badger.DB) *Handlers {
	return &Handlers{
		session:  sess,
		profiles: profiles,
		catalog:  cat,
		hub:      hub,
		db:       db,
	}
}

// WebSocket upgrades the connection and attaches it to the hub.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWS(h.hub, w, r)
}

// decode reads and validates a JSON request body into dst. On failure
// it writes the error response and returns false.
func (h *Handlers) decode(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rw.BadRequest("Invalid JSON request body")
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, verr.Error(), verr.Details())
		return false
	}
	return true
}

// writeSessionError maps session and store errors onto the envelope.
func (h *Handlers) writeSessionError(rw *ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoProfile):
		rw.Error(http.StatusConflict, ErrCodeNoProfile, "No active profile")
	case errors.Is(err, session.ErrUnknownContent):
		rw.NotFound("Content not available in the current view")
	case errors.Is(err, store.ErrProfileNotFound):
		rw.NotFound("Profile not found")
	case errors.Is(err, session.ErrInvalidPage), errors.Is(err, session.ErrInvalidFilter):
		rw.BadRequest(err.Error())
	default:
		logging.Error().Err(err).Msg("Unhandled session error")
		rw.InternalError("Internal error")
	}
}
