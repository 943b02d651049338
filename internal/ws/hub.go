package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"OchiqMuloqot/entity"
)

// Event represents a WebSocket event sent to operator clients.
type Event struct {
	Type string      `json:"type"` // "registration"
	Data interface{} `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts
// completed registrations to them. The feed is one-way, inbound
// frames are read only to detect disconnects.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// RegistrationSaved pushes a registration event to all connected
// clients. Drops the event when the broadcast queue is full so a
// stalled hub never blocks a dialog turn.
func (h *Hub) RegistrationSaved(rec *entity.Registration) {
	event := &Event{
		Type: "registration",
		Data: rec,
	}

	select {
	case h.broadcast <- event:
	default:
		if h.log != nil {
			h.log.Warn("ws broadcast queue full, registration event dropped",
				slog.String("id", rec.ID))
		}
	}
}

