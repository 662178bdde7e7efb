// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package api

import (
	"net/http"

	"github.com/tomtom215/lonestar/internal/session"
)

type navigateRequest struct {
	Page string `json:"page" validate:"required"`
}

type filterRequest struct {
	// Filter is a content type, or "all" to clear.
	Filter string `json:"filter" validate:"required"`
}

type queryRequest struct {
	Query string `json:"query" validate:"max=200"`
}

type selectItemRequest struct {
	ContentID string `json:"content_id" validate:"required"`
}

// State returns the session snapshot.
func (h *Handlers) State(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.session.State())
}

// Navigate switches pages.
func (h *Handlers) Navigate(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req navigateRequest
	if !h.decode(rw, r, &req) {
		return
	}
	if err := h.session.Navigate(session.Page(req.Page)); err != nil {
		h.writeSessionError(rw, err)
		return
	}
	rw.Success(h.session.State())
}

// SetFilter changes the active content-type filter.
func (h *Handlers) SetFilter(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req filterRequest
	if !h.decode(rw, r, &req) {
		return
	}
	if err := h.session.SetFilter(req.Filter); err != nil {
		h.writeSessionError(rw, err)
		return
	}
	rw.Success(h.session.State())
}

// SetQuery updates the search query and schedules AI augmentation.
func (h *Handlers) SetQuery(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req queryRequest
	if !h.decode(rw, r, &req) {
		return
	}
	if err := h.session.SetQuery(req.Query); err != nil {
		h.writeSessionError(rw, err)
		return
	}
	rw.Success(h.session.State())
}

// SelectItem opens the detail overlay.
func (h *Handlers) SelectItem(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req selectItemRequest
	if !h.decode(rw, r, &req) {
		return
	}
	if err := h.session.SelectItem(req.ContentID); err != nil {
		h.writeSessionError(rw, err)
		return
	}
	rw.Success(h.session.State())
}

// ClearSelection closes the detail overlay.
func (h *Handlers) ClearSelection(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	h.session.ClearSelection()
	rw.Success(h.session.State())
}
