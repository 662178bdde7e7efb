// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/lonestar/internal/models"
	"github.com/tomtom215/lonestar/internal/session"
	"github.com/tomtom215/lonestar/internal/videoid"
)

// documentaryCategory is the category label backing the documentary row.
const documentaryCategory = "Documentary"

type homeRow struct {
	Title string               `json:"title"`
	Items []models.ContentItem `json:"items"`
}

// filterRowTitle names the single row shown while a type filter is
// active.
func filterRowTitle(filter string) string {
	switch filter {
	case string(models.TypeMovie):
		return "Movies"
	case string(models.TypeSeries):
		return "Series"
	case string(models.TypeMusicVideo):
		return "Music Videos"
	}
	return "TV Shows"
}

// Home returns the hero plus the rows for the home page. With no type
// filter active the derived rows render; with a filter active the page
// collapses to one row holding the whole filtered sequence. Rows that
// come up empty are omitted.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	state := h.session.State()
	if state.Profile == nil {
		rw.Error(http.StatusConflict, ErrCodeNoProfile, "No active profile")
		return
	}
	view := h.session.View()

	var rows []homeRow
	appendRow := func(title string, items []models.ContentItem) {
		if len(items) > 0 {
			rows = append(rows, homeRow{Title: title, Items: items})
		}
	}
	if view.IsAll() {
		appendRow("AI Picks for "+state.Profile.Name, h.session.PersonalPicks())
		appendRow("Featured", view.Featured())
		appendRow("Liberian Hits", view.LocalHits())
		appendRow("Trending Now", view.New())
		appendRow("My List", view.MyList())
		appendRow("Top Series", view.Series())
		appendRow("Documentaries", view.Category(documentaryCategory))
	} else {
		appendRow(filterRowTitle(view.Filter()), view.Items())
	}

	data := map[string]interface{}{
		"filter":        view.Filter(),
		"rows":          rows,
		"picks_loading": state.PicksLoading,
	}
	if hero, ok := view.Hero(); ok {
		data["hero"] = hero
	}
	rw.Success(data)
}

// Content returns the detail view for one item: the item itself, its
// related rail, and the profile-specific flags the overlay renders.
func (h *Handlers) Content(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	state := h.session.State()
	if state.Profile == nil {
		rw.Error(http.StatusConflict, ErrCodeNoProfile, "No active profile")
		return
	}

	id := chi.URLParam(r, "id")
	if !h.session.Accessible(id) {
		h.writeSessionError(rw, session.ErrUnknownContent)
		return
	}
	view := h.session.View()
	item, _ := h.catalog.Get(id)

	data := map[string]interface{}{
		"item":         item,
		"related":      view.RelatedTo(id),
		"in_watchlist": state.Profile.InWatchlist(id),
		"in_history":   state.Profile.InHistory(id),
	}
	if rec, ok := h.session.Download(id); ok {
		data["download"] = rec
	}
	if videoID, ok := videoid.Extract(item.VideoURL); ok {
		data["embed_url"] = videoid.EmbedURL(videoID)
	}
	rw.Success(data)
}

// Play records the item on the profile's history and returns playback
// info.
func (h *Handlers) Play(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")
	item, err := h.session.Play(id)
	if err != nil {
		h.writeSessionError(rw, err)
		return
	}
	data := map[string]interface{}{"item": item}
	if videoID, ok := videoid.Extract(item.VideoURL); ok {
		data["embed_url"] = videoid.EmbedURL(videoID)
	}
	rw.Success(data)
}

// SearchResults returns the merged local and AI-augmented results for
// the current query.
func (h *Handlers) SearchResults(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	state := h.session.State()
	if state.Profile == nil {
		rw.Error(http.StatusConflict, ErrCodeNoProfile, "No active profile")
		return
	}
	rw.Success(map[string]interface{}{
		"query":   state.Query,
		"results": h.session.SearchResults(),
		"loading": state.SearchLoading,
	})
}

type resolveVideoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// ResolveVideo extracts the embeddable video ID from a watch URL.
func (h *Handlers) ResolveVideo(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	var req resolveVideoRequest
	if !h.decode(rw, r, &req) {
		return
	}
	videoID, ok := videoid.Extract(req.URL)
	if !ok {
		rw.BadRequest("URL does not contain a recognizable video ID")
		return
	}
	rw.Success(map[string]interface{}{
		"video_id":  videoID,
		"embed_url": videoid.EmbedURL(videoID),
	})
}
