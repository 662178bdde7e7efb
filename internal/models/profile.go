// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package models

import "slices"

// Profile is a viewer profile with a parental-control rating ceiling.
// Watchlist and history hold content IDs in insertion order. IDs that no
// longer exist in the catalog are tolerated, not purged.
type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar"`
	MaxRating Rating   `json:"max_rating"`
	Watchlist []string `json:"watchlist"`
	History   []string `json:"history"`
}

// InWatchlist reports whether the content ID is on the profile's watchlist.
func (p *Profile) InWatchlist(contentID string) bool {
	return slices.Contains(p.Watchlist, contentID)
}

// InHistory reports whether the content ID is in the profile's history.
func (p *Profile) InHistory(contentID string) bool {
	return slices.Contains(p.History, contentID)
}

// Clone returns a deep copy of the profile. Stores hand out clones so that
// callers can never mutate persisted state in place.
func (p *Profile) Clone() *Profile {
	c := *p
	c.Watchlist = slices.Clone(p.Watchlist)
	c.History = slices.Clone(p.History)
	return &c
}
