// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	gws "github.com/gorilla/websocket"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.RunWithContext(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("hub did not stop")
		}
	})
	return hub, cancel
}

func dial(t *testing.T, hub *Hub) *gws.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWS(hub, w, r)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastReachesClient(t *testing.T) {
	hub, _ := startHub(t)
	conn := dial(t, hub)

	// Give the hub loop a moment to process registration.
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(EventDownloadToggled, map[string]string{"content_id": "lib3"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.Type != EventDownloadToggled {
		t.Errorf("type = %q, want %q", event.Type, EventDownloadToggled)
	}
	data, ok := event.Data.(map[string]interface{})
	if !ok || data["content_id"] != "lib3" {
		t.Errorf("data = %#v, want content_id lib3", event.Data)
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestHubBroadcastMultipleClients(t *testing.T) {
	hub, _ := startHub(t)
	first := dial(t, hub)
	second := dial(t, hub)
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(EventAIPicks, []string{"lib1", "lib4"})

	for _, conn := range []*gws.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var event Event
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if event.Type != EventAIPicks {
			t.Errorf("type = %q, want %q", event.Type, EventAIPicks)
		}
	}
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub, cancel := startHub(t)
	conn := dial(t, hub)
	time.Sleep(50 * time.Millisecond)

	cancel()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
