// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package models defines the core domain types shared across Lonestar:
// catalog content, viewer profiles and the offline download ledger.
package models

import "fmt"

// Rating is a content-rating tier. Tiers are strictly ordered:
// G < PG < PG-13 < R.
type Rating string

// Content rating tiers.
const (
	RatingG    Rating = "G"
	RatingPG   Rating = "PG"
	RatingPG13 Rating = "PG-13"
	RatingR    Rating = "R"
)

// Tier returns the numeric position of the rating in the ordering,
// starting at 1 for G. Unknown ratings return 0.
func (r Rating) Tier() int {
	switch r {
	case RatingG:
		return 1
	case RatingPG:
		return 2
	case RatingPG13:
		return 3
	case RatingR:
		return 4
	default:
		return 0
	}
}

// Valid reports whether r is one of the four known tiers.
func (r Rating) Valid() bool {
	return r.Tier() > 0
}

// AllowedUnder reports whether content rated r may be shown under the
// given ceiling.
func (r Rating) AllowedUnder(ceiling Rating) bool {
	return r.Tier() <= ceiling.Tier()
}

// ParseRating converts a string to a Rating, rejecting unknown tiers.
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown content rating %q", s)
	}
	return r, nil
}

// ContentType classifies a catalog entry.
type ContentType string

// Content types.
const (
	TypeMovie      ContentType = "movie"
	TypeSeries     ContentType = "series"
	TypeMusicVideo ContentType = "music-video"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case TypeMovie, TypeSeries, TypeMusicVideo:
		return true
	default:
		return false
	}
}

// Episode is a single episode of a series.
type Episode struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Thumbnail     string `json:"thumbnail"`
	Duration      string `json:"duration"`
	VideoURL      string `json:"video_url"`
	EpisodeNumber int    `json:"episode_number"`
}

// ContentItem is a catalog entry. Items are immutable for the lifetime of
// the process; the catalog is the only source of them.
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Thumbnail   string      `json:"thumbnail"`
	Banner      string      `json:"banner"`
	Category    string      `json:"category"`
	Rating      Rating      `json:"rating"`
	Year        int         `json:"year"`
	Duration    string      `json:"duration"`
	IsNew       bool        `json:"is_new,omitempty"`
	IsFeatured  bool        `json:"is_featured,omitempty"`
	Type        ContentType `json:"type"`
	VideoURL    string      `json:"video_url,omitempty"`
	Cast        string      `json:"cast,omitempty"`
	Director    string      `json:"director,omitempty"`
	Episodes    []Episode   `json:"episodes,omitempty"`
}
