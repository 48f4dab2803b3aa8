package websocket

import (
	"sync"

	"promptlink-be/internal/pkg/logger"
)

// Hub relays session progress events to websocket watchers. Watchers are
// keyed by session id; one session can have several watchers (multi-tab).
// Polling stays the source of truth, the stream is a convenience.
type Hub struct {
	// Registered watchers map: SessionID -> list of clients
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Watcher registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Session has no watchers left", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToSession sends an event payload to every watcher of one session.
// A watcher with a full buffer is dropped rather than allowed to stall the
// rest.
func (h *Hub) BroadcastToSession(sessionID string, payload []byte) {
	h.mu.RLock()
	clients, found := h.clients[sessionID]
	h.mu.RUnlock()

	if !found {
		return
	}

	for _, client := range clients {
		select {
		case client.Send <- payload:
		default:
			h.logger.Warn("Hub", "Watcher buffer full, dropping connection", map[string]interface{}{"session_id": sessionID})
			h.unregister <- client
		}
	}
}
