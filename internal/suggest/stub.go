// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package suggest

import (
	"context"

	"github.com/tomtom215/lonestar/internal/models"
)

// Stub is a deterministic Suggester for tests. Returned ids are still run
// through ParseIDList, so the unknown-id filter behaves exactly as in the
// real client.
type Stub struct {
	// SearchText is the raw "model output" for SearchMatches.
	SearchText string

	// PersonalText is the raw "model output" for PersonalPicks.
	PersonalText string

	// Err, when set, is returned by both methods.
	Err error

	// SearchCalls and PersonalCalls count invocations.
	SearchCalls   int
	PersonalCalls int
}

// SearchMatches implements Suggester.
func (s *Stub) SearchMatches(_ context.Context, _ string, library []models.ContentItem) ([]string, error) {
	s.SearchCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return ParseIDList(s.SearchText, library), nil
}

// PersonalPicks implements Suggester.
func (s *Stub) PersonalPicks(_ context.Context, _ *models.Profile, library []models.ContentItem) ([]string, error) {
	s.PersonalCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	return ParseIDList(s.PersonalText, library), nil
}
