// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package suggest

import (
	"strings"

	"github.com/tomtom215/lonestar/internal/metrics"
	"github.com/tomtom215/lonestar/internal/models"
)

// ParseIDList defensively parses the model's plain-text reply as a
// comma-separated id list. Tokens are trimmed of whitespace and stray
// quoting; anything that is not an id present in library is discarded.
// Duplicates keep their first occurrence.
func ParseIDList(text string, library []models.ContentItem) []string {
	known := make(map[string]struct{}, len(library))
	for _, item := range library {
		known[item.ID] = struct{}{}
	}

	var out []string
	seen := make(map[string]struct{})
	for _, token := range strings.Split(text, ",") {
		id := strings.Trim(strings.TrimSpace(token), "\"'`")
		if id == "" {
			continue
		}
		if _, ok := known[id]; !ok {
			metrics.AIInvalidIDsDiscarded.Inc()
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
