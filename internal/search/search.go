// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package search implements the two-source search pipeline: a synchronous
// local substring match and the merge of asynchronously arriving AI matches
// into it.
package search

import (
	"strings"

	"github.com/tomtom215/lonestar/internal/models"
)

// Local returns items whose title or category contains the query as a
// case-insensitive substring, preserving the input order. An empty query
// matches nothing.
func Local(items []models.ContentItem, query string) []models.ContentItem {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []models.ContentItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			out = append(out, item)
		}
	}
	return out
}

// MergeByID appends ai to local and drops duplicate IDs, keeping the first
// occurrence. Local results therefore win position on collision:
// [a,b] + [b,c] = [a,b,c].
func MergeByID(local, ai []models.ContentItem) []models.ContentItem {
	seen := make(map[string]struct{}, len(local)+len(ai))
	out := make([]models.ContentItem, 0, len(local)+len(ai))
	for _, item := range local {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	for _, item := range ai {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Resolve maps validated IDs back to items, skipping IDs not present,
// preserving the id-list order.
func Resolve(items []models.ContentItem, ids []string) []models.ContentItem {
	byID := make(map[string]models.ContentItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	var out []models.ContentItem
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out
}
