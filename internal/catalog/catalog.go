// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package catalog holds the immutable in-memory content catalog and the
// profile-aware filtering layer derived from it.
//
// The catalog is loaded once at startup and never mutated. Everything the
// rest of the system shows a viewer is a stable-ordered subset of it,
// computed by View.
package catalog

import (
	"fmt"
	"slices"

	"github.com/tomtom215/lonestar/internal/models"
)

// Store is the immutable content catalog. Safe for concurrent use: it is
// never written after construction.
type Store struct {
	items []models.ContentItem
	byID  map[string]models.ContentItem
}

// NewStore builds a catalog from items, preserving their order. Duplicate
// IDs, unknown ratings and unknown content types are rejected.
func NewStore(items []models.ContentItem) (*Store, error) {
	byID := make(map[string]models.ContentItem, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %q has empty id", item.Title)
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", item.ID)
		}
		if !item.Rating.Valid() {
			return nil, fmt.Errorf("catalog item %q has unknown rating %q", item.ID, item.Rating)
		}
		if !item.Type.Valid() {
			return nil, fmt.Errorf("catalog item %q has unknown type %q", item.ID, item.Type)
		}
		byID[item.ID] = item
	}
	return &Store{items: slices.Clone(items), byID: byID}, nil
}

// NewSeedStore builds the catalog from the compiled-in seed.
// The seed is known-valid, so this cannot fail.
func NewSeedStore() *Store {
	s, err := NewStore(Seed())
	if err != nil {
		panic(fmt.Sprintf("invalid seed catalog: %v", err))
	}
	return s
}

// All returns every catalog item in source order.
func (s *Store) All() []models.ContentItem {
	return slices.Clone(s.items)
}

// Get returns the item with the given ID.
func (s *Store) Get(id string) (models.ContentItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

// Has reports whether the ID exists in the catalog.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Len returns the number of catalog items.
func (s *Store) Len() int {
	return len(s.items)
}
