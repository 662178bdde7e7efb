// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package catalog

import (
	"math/rand"

	"github.com/tomtom215/lonestar/internal/models"
)

// FilterAll is the sentinel meaning no type filter is active.
const FilterAll = "all"

// maxRelated caps the recommended-for-item rail on the detail view.
const maxRelated = 6

// localIDPrefix marks locally produced content for the "Liberian Hits" row.
const localIDPrefix = "lib"

// View is the profile-permitted, filter-narrowed slice of the catalog plus
// every row derived from it. A View is computed once per profile or filter
// change and reused across renders, so the hero pick stays stable until the
// underlying selection actually changes.
type View struct {
	profile *models.Profile
	filter  string
	items   []models.ContentItem
	heroID  string
}

// ViewFor computes the view for a profile and active filter.
//
// A nil profile yields an empty view: that absence is the signal to show
// the profile picker instead of content. Surviving items keep their catalog
// order; no re-sorting happens anywhere downstream.
//
// The hero is rolled here, uniformly over the featured subset if non-empty,
// otherwise the first surviving item.
func (s *Store) ViewFor(profile *models.Profile, filter string, rng *rand.Rand) View {
	if filter == "" {
		filter = FilterAll
	}
	v := View{profile: profile, filter: filter}
	if profile == nil {
		return v
	}

	for _, item := range s.items {
		if !item.Rating.AllowedUnder(profile.MaxRating) {
			continue
		}
		if filter != FilterAll && string(item.Type) != filter {
			continue
		}
		v.items = append(v.items, item)
	}

	if featured := v.Featured(); len(featured) > 0 {
		v.heroID = featured[rng.Intn(len(featured))].ID
	} else if len(v.items) > 0 {
		v.heroID = v.items[0].ID
	}
	return v
}

// Items returns the filtered sequence in catalog order.
func (v View) Items() []models.ContentItem {
	return v.items
}

// IsAll reports whether no explicit type filter is active.
func (v View) IsAll() bool {
	return v.filter == FilterAll
}

// Filter returns the active filter value.
func (v View) Filter() string {
	return v.filter
}

// Contains reports whether the ID survived filtering.
func (v View) Contains(id string) bool {
	for _, item := range v.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Hero returns the rolled hero item, if the view is non-empty.
func (v View) Hero() (models.ContentItem, bool) {
	return v.find(v.heroID)
}

// Featured returns items flagged as featured.
func (v View) Featured() []models.ContentItem {
	return v.where(func(item models.ContentItem) bool { return item.IsFeatured })
}

// New returns items flagged as new, the "Trending Now" row.
func (v View) New() []models.ContentItem {
	return v.where(func(item models.ContentItem) bool { return item.IsNew })
}

// LocalHits returns locally produced content, the "Liberian Hits" row.
func (v View) LocalHits() []models.ContentItem {
	return v.where(func(item models.ContentItem) bool {
		return len(item.ID) >= len(localIDPrefix) && item.ID[:len(localIDPrefix)] == localIDPrefix
	})
}

// MyList returns items on the profile's watchlist, in catalog order.
func (v View) MyList() []models.ContentItem {
	if v.profile == nil {
		return nil
	}
	return v.where(func(item models.ContentItem) bool { return v.profile.InWatchlist(item.ID) })
}

// Series returns items of type series.
func (v View) Series() []models.ContentItem {
	return v.where(func(item models.ContentItem) bool { return item.Type == models.TypeSeries })
}

// Category returns items with the given category label.
func (v View) Category(name string) []models.ContentItem {
	return v.where(func(item models.ContentItem) bool { return item.Category == name })
}

// RelatedTo returns up to maxRelated other items sharing the selected
// item's category or type, order-preserving.
func (v View) RelatedTo(id string) []models.ContentItem {
	selected, ok := v.find(id)
	if !ok {
		return nil
	}
	var related []models.ContentItem
	for _, item := range v.items {
		if item.ID == selected.ID {
			continue
		}
		if item.Category == selected.Category || item.Type == selected.Type {
			related = append(related, item)
			if len(related) == maxRelated {
				break
			}
		}
	}
	return related
}

func (v View) find(id string) (models.ContentItem, bool) {
	if id == "" {
		return models.ContentItem{}, false
	}
	for _, item := range v.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.ContentItem{}, false
}

func (v View) where(keep func(models.ContentItem) bool) []models.ContentItem {
	var out []models.ContentItem
	for _, item := range v.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
