// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package suggest

import (
	"fmt"
	"strings"

	"github.com/tomtom215/lonestar/internal/models"
)

// personalPrompt builds the personalization prompt from the profile's
// history and watchlist titles and its rating ceiling.
func personalPrompt(profile *models.Profile, library []models.ContentItem) string {
	var history, watchlist []string
	for _, item := range library {
		if profile.InHistory(item.ID) {
			history = append(history, item.Title)
		}
		if profile.InWatchlist(item.ID) {
			watchlist = append(watchlist, item.Title)
		}
	}
	titles := make([]string, len(library))
	for i, item := range library {
		titles[i] = item.Title
	}

	return fmt.Sprintf(`Based on this user's profile on a Liberian streaming platform:
Profile Name: %s
Watch History: %s
Watchlist: %s
Parental Controls (Max Rating): %s

Current available movies: %s

Identify %d movies from the current list that would be best recommendations. Return ONLY the movie IDs as a comma-separated list.
Ensure recommendations respect the rating limit: %s.`,
		profile.Name,
		strings.Join(history, ", "),
		strings.Join(watchlist, ", "),
		profile.MaxRating,
		strings.Join(titles, ", "),
		PersonalPickCount,
		profile.MaxRating,
	)
}

// searchPrompt builds the query-matching prompt over the library listing.
func searchPrompt(query string, library []models.ContentItem) string {
	listing := make([]string, len(library))
	for i, item := range library {
		listing[i] = fmt.Sprintf("%s: %s (%s)", item.ID, item.Title, item.Category)
	}

	return fmt.Sprintf(`A user is searching for: %q on a Liberian streaming app.
Here is the library: %s

Match the query to the most relevant movie IDs. Return ONLY a comma-separated list of IDs.`,
		query,
		strings.Join(listing, ", "),
	)
}
