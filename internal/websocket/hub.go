// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

// Package websocket pushes asynchronous session updates to connected
// browsers. Debounced work (AI search augmentation, personal picks)
// finishes after the HTTP request that triggered it has already
// returned, so completions are delivered over a broadcast hub instead
// of a response body.
package websocket

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/lonestar/internal/logging"
	"github.com/tomtom215/lonestar/internal/metrics"
)

// Event types pushed to clients.
const (
	EventSearchAugmented = "search_augmented"
	EventAIPicks         = "ai_picks"
	EventDownloadToggled = "download_toggled"
	EventProfileUpdated  = "profile_updated"
)

// Event is the wire envelope for a hub broadcast.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains the set of connected clients and fans broadcasts out
// to all of them. One goroutine owns the clients map; channels carry
// registration, unregistration and broadcast requests into it.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// NewHub creates a hub ready for Run or RunWithContext.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		broadcast:  make(chan []byte, 256),
	}
}

// RunWithContext runs the hub loop until ctx is cancelled. The nil
// error return makes the hub restartable under a supervisor.
func (h *Hub) RunWithContext(ctx context.Context) error {
	logging.Info().Msg("WebSocket hub started")
	for {
		// Registration and unregistration are drained before
		// broadcasts so a disconnecting client never receives a
		// message after its send channel closed.
		select {
		case client := <-h.register:
			h.add(client)
			continue
		case client := <-h.unregister:
			h.remove(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown()
			return nil
		case client := <-h.register:
			h.add(client)
		case client := <-h.unregister:
			h.remove(client)
		case message := <-h.broadcast:
			h.send(message)
		}
	}
}

// Broadcast queues an event for delivery to every connected client.
// Delivery is best effort: if the hub's queue is full the event is
// dropped and logged rather than blocking the caller.
func (h *Hub) Broadcast(eventType string, data interface{}) {
	payload, err := json.Marshal(Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		logging.Error().Err(err).Str("type", eventType).Msg("Failed to marshal hub event")
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		logging.Warn().Str("type", eventType).Msg("Hub broadcast queue full, dropping event")
	}
}

func (h *Hub) add(client *Client) {
	h.clients[client] = true
	metrics.WebSocketClients.Set(float64(len(h.clients)))
	logging.Debug().Uint64("client_id", client.id).Int("clients", len(h.clients)).Msg("WebSocket client registered")
}

func (h *Hub) remove(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	metrics.WebSocketClients.Set(float64(len(h.clients)))
	logging.Debug().Uint64("client_id", client.id).Int("clients", len(h.clients)).Msg("WebSocket client unregistered")
}

func (h *Hub) send(message []byte) {
	for client := range h.clients {
		select {
		case client.send <- message:
		default:
			// Slow consumer. Drop it rather than stall the hub.
			delete(h.clients, client)
			close(client.send)
		}
	}
	metrics.WebSocketClients.Set(float64(len(h.clients)))
}

func (h *Hub) shutdown() {
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	metrics.WebSocketClients.Set(0)
	logging.Info().Msg("WebSocket hub stopped")
}
