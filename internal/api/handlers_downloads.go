// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package api

import (
	"net/http"
)

type downloadRequest struct {
	ContentID string `json:"content_id" validate:"required"`
}

// Downloads lists saved items with remaining shelf life.
func (h *Handlers) Downloads(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{
		"downloads": h.session.Downloads(),
	})
}

// ToggleDownload flips an item's saved-for-offline state.
func (h *Handlers) ToggleDownload(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req downloadRequest
	if !h.decode(rw, r, &req) {
		return
	}
	rec, added, err := h.session.ToggleDownload(req.ContentID)
	if err != nil {
		h.writeSessionError(rw, err)
		return
	}
	data := map[string]interface{}{
		"content_id": req.ContentID,
		"added":      added,
	}
	if added {
		data["record"] = rec
	}
	rw.Success(data)
}
