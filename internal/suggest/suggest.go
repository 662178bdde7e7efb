// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package suggest talks to the generative-text API that powers AI search
// matching and personalized picks.
//
// The upstream is a black box returning untrusted plain text. Everything
// it says is run through ParseIDList, which keeps only ids that actually
// exist in the library snapshot it was asked about - a hallucinated id can
// never reach a renderer. Callers treat every failure as "no AI results";
// there are no retries.
package suggest

import (
	"context"

	"github.com/tomtom215/lonestar/internal/models"
)

// PersonalPickCount is how many personalized recommendations are requested.
const PersonalPickCount = 3

// Suggester is the narrow interface over the generative-text API. Both
// methods return only ids validated against the given library snapshot.
// Implementations must degrade to an empty list plus an error on any
// upstream failure.
type Suggester interface {
	// SearchMatches asks the model to match a free-text query against the
	// library and returns the matching content ids.
	SearchMatches(ctx context.Context, query string, library []models.ContentItem) ([]string, error)

	// PersonalPicks asks the model for PersonalPickCount recommendations
	// for the profile, using its history, watchlist and rating ceiling as
	// context.
	PersonalPicks(ctx context.Context, profile *models.Profile, library []models.ContentItem) ([]string, error)
}

// Disabled is the Suggester used when no API key is configured. It
// returns empty results so the service runs with purely local behavior.
type Disabled struct{}

// SearchMatches implements Suggester.
func (Disabled) SearchMatches(context.Context, string, []models.ContentItem) ([]string, error) {
	return nil, nil
}

// PersonalPicks implements Suggester.
func (Disabled) PersonalPicks(context.Context, *models.Profile, []models.ContentItem) ([]string, error) {
	return nil, nil
}
