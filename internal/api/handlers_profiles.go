// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package api

import (
	"net/http"

	"github.com/tomtom215/lonestar/internal/models"
)

type createProfileRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	Avatar    string `json:"avatar" validate:"omitempty,url"`
	MaxRating string `json:"max_rating" validate:"required,rating"`
}

type selectProfileRequest struct {
	ProfileID string `json:"profile_id" validate:"required"`
}

type watchlistRequest struct {
	ContentID string `json:"content_id" validate:"required"`
}

// Profiles lists every profile for the picker screen.
func (h *Handlers) Profiles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(map[string]interface{}{
		"profiles": h.profiles.All(),
	})
}

// CreateProfile adds a profile and returns it.
func (h *Handlers) CreateProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req createProfileRequest
	if !h.decode(rw, r, &req) {
		return
	}
	profile, err := h.profiles.Create(req.Name, req.Avatar, models.Rating(req.MaxRating))
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	rw.Created(profile)
}

// SelectProfile activates a profile for the session.
func (h *Handlers) SelectProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req selectProfileRequest
	if !h.decode(rw, r, &req) {
		return
	}
	if err := h.session.SelectProfile(req.ProfileID); err != nil {
		h.writeSessionError(rw, err)
		return
	}
	rw.Success(h.session.State())
}

// SignOut returns the session to the profile picker.
func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	h.session.SignOut()
	rw.Success(h.session.State())
}

// ToggleWatchlist flips the item on the active profile's watchlist.
func (h *Handlers) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req watchlistRequest
	if !h.decode(rw, r, &req) {
		return
	}
	added, err := h.session.ToggleWatchlist(req.ContentID)
	if err != nil {
		h.writeSessionError(rw, err)
		return
	}
	rw.Success(map[string]interface{}{
		"content_id": req.ContentID,
		"added":      added,
		"profile":    h.session.State().Profile,
	})
}
