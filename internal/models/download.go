// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package models

import (
	"fmt"
	"time"
)

// DownloadTTL is the fixed lifetime of an offline download record.
const DownloadTTL = 48 * time.Hour

// DownloadRecord marks a content item as available offline. At most one
// record exists per content ID. Expiry is advisory: nothing deletes expired
// records, display logic computes remaining time on demand.
type DownloadRecord struct {
	ContentID    string    `json:"content_id"`
	DownloadedAt time.Time `json:"downloaded_at"`
	ExpiryAt     time.Time `json:"expiry_at"`
}

// NewDownloadRecord creates a record expiring DownloadTTL after now.
func NewDownloadRecord(contentID string, now time.Time) DownloadRecord {
	return DownloadRecord{
		ContentID:    contentID,
		DownloadedAt: now,
		ExpiryAt:     now.Add(DownloadTTL),
	}
}

// Expired reports whether the record has passed its expiry at the given time.
func (d DownloadRecord) Expired(now time.Time) bool {
	return !now.Before(d.ExpiryAt)
}

// RemainingHours returns the whole hours left before expiry, floored at 0.
func (d DownloadRecord) RemainingHours(now time.Time) int {
	if d.Expired(now) {
		return 0
	}
	return int(d.ExpiryAt.Sub(now).Hours())
}

// TimeLeft renders the remaining lifetime for display, e.g. "47h remaining"
// or the literal "Expired".
func (d DownloadRecord) TimeLeft(now time.Time) string {
	if d.Expired(now) {
		return "Expired"
	}
	return fmt.Sprintf("%dh remaining", d.RemainingHours(now))
}
