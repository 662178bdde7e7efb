// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package videoid extracts the opaque 11-character YouTube video id from
// the URL shapes the catalog carries. A URL that matches no known shape is
// "no playable id", never an error.
package videoid

import (
	"fmt"
	"regexp"
)

// idLength is the fixed length of a YouTube video id.
const idLength = 11

// urlPattern covers the known URL shapes: watch?v=, youtu.be/, embed/,
// v/, u/<c>/ and a trailing &v= parameter.
var urlPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

// Extract returns the video id embedded in url. ok is false when the URL
// matches no known shape or the candidate id is not exactly 11 characters.
func Extract(url string) (id string, ok bool) {
	m := urlPattern.FindStringSubmatch(url)
	if m == nil || len(m[1]) != idLength {
		return "", false
	}
	return m[1], true
}

// EmbedURL returns the embeddable player URL for a video id.
func EmbedURL(id string) string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
}
