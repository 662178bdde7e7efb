// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package videoid

import "testing"

func TestExtract(t *testing.T) {
	cases := []struct {
		url    string
		wantID string
		wantOK bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/9bZkp7q19f0", "9bZkp7q19f0", true},
		{"https://www.youtube.com/embed/M7lc1UVf-VE", "M7lc1UVf-VE", true},
		{"https://www.youtube.com/v/2Vv-BfVoq4g", "2Vv-BfVoq4g", true},
		{"https://www.youtube.com/watch?list=x&v=kJQP7kiw5Fk", "kJQP7kiw5Fk", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ#start", "dQw4w9WgXcQ", true},
		{"https://example.com/video.mp4", "", false},
		{"https://www.youtube.com/watch?v=tooshort", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		id, ok := Extract(tc.url)
		if ok != tc.wantOK || id != tc.wantID {
			t.Errorf("Extract(%q) = %q, %v; want %q, %v", tc.url, id, ok, tc.wantID, tc.wantOK)
		}
	}
}

func TestEmbedURL(t *testing.T) {
	if got := EmbedURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("EmbedURL = %q", got)
	}
}
