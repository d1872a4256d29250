// Package notify pushes watch-list progress events to a user's connected
// websocket clients.
package notify

import (
	"log/slog"

	"github.com/gorilla/websocket"
)

// Event is a progress update delivered to the owning user's clients.
type Event struct {
	UserID    string `json:"-"`
	Username  string `json:"username"`
	Anime     string `json:"anime"`
	Progress  int    `json:"progress"`
	Timestamp int64  `json:"timestamp"`
}

// Client is one websocket connection bound to a user.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan Event
}

// Hub fans progress events out to the clients of the user they belong to.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	events     chan Event
}

// NewHub creates a new hub.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan Event, 100),
	}
}

// Run owns the client map; it is the only goroutine touching it.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			slog.Debug("notify client connected", "user_id", client.UserID)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				slog.Debug("notify client disconnected", "user_id", client.UserID)
			}

		case evt := <-h.events:
			for client := range h.clients {
				if client.UserID != evt.UserID {
					continue
				}
				select {
				case client.Send <- evt:
				default:
					// Slow consumer: drop it rather than stall the hub.
					delete(h.clients, client)
					close(client.Send)
				}
			}
		}
	}
}

// Register enqueues a client for delivery.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister detaches a client.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Publish hands an event to the hub without blocking the caller.
func (h *Hub) Publish(evt Event) {
	select {
	case h.events <- evt:
	default:
		slog.Warn("notify channel full, dropping event", "user_id", evt.UserID, "anime", evt.Anime)
	}
}
