// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package models

import (
	"testing"
	"time"
)

func TestRatingOrdering(t *testing.T) {
	ordered := []Rating{RatingG, RatingPG, RatingPG13, RatingR}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Tier() >= ordered[i].Tier() {
			t.Errorf("expected %s < %s in tier ordering", ordered[i-1], ordered[i])
		}
	}
	if Rating("NC-17").Tier() != 0 {
		t.Error("unknown rating should have tier 0")
	}
}

func TestRatingAllowedUnder(t *testing.T) {
	cases := []struct {
		content, ceiling Rating
		want             bool
	}{
		{RatingG, RatingG, true},
		{RatingPG, RatingG, false},
		{RatingPG13, RatingR, true},
		{RatingR, RatingPG13, false},
	}
	for _, tc := range cases {
		if got := tc.content.AllowedUnder(tc.ceiling); got != tc.want {
			t.Errorf("%s under %s = %v, want %v", tc.content, tc.ceiling, got, tc.want)
		}
	}
}

func TestParseRating(t *testing.T) {
	if r, err := ParseRating("PG-13"); err != nil || r != RatingPG13 {
		t.Errorf("ParseRating(PG-13) = %v, %v", r, err)
	}
	if _, err := ParseRating("X"); err == nil {
		t.Error("ParseRating should reject unknown tiers")
	}
}

func TestProfileClone(t *testing.T) {
	p := &Profile{
		ID:        "1",
		Name:      "James",
		MaxRating: RatingR,
		Watchlist: []string{"lib1"},
		History:   []string{"lib2"},
	}
	c := p.Clone()
	c.Watchlist[0] = "changed"
	c.History = append(c.History, "lib3")

	if p.Watchlist[0] != "lib1" {
		t.Error("clone shares watchlist backing array with original")
	}
	if len(p.History) != 1 {
		t.Error("clone shares history with original")
	}
	if !p.InWatchlist("lib1") || p.InWatchlist("changed") {
		t.Error("InWatchlist membership check wrong")
	}
}

func TestDownloadRecordExpiry(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	rec := NewDownloadRecord("lib1", now)

	if got := rec.ExpiryAt.Sub(rec.DownloadedAt); got != DownloadTTL {
		t.Errorf("expiry offset = %v, want %v", got, DownloadTTL)
	}
	if rec.Expired(now) {
		t.Error("fresh record should not be expired")
	}
	if got := rec.RemainingHours(now); got != 48 {
		t.Errorf("RemainingHours at creation = %d, want 48", got)
	}
	if got := rec.TimeLeft(now.Add(90 * time.Minute)); got != "46h remaining" {
		t.Errorf("TimeLeft after 90m = %q, want 46h remaining", got)
	}
	if got := rec.TimeLeft(now.Add(DownloadTTL)); got != "Expired" {
		t.Errorf("TimeLeft at expiry = %q, want Expired", got)
	}
	if rec.RemainingHours(now.Add(DownloadTTL+time.Hour)) != 0 {
		t.Error("RemainingHours should floor at 0 after expiry")
	}
}
