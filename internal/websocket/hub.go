package websocket

import (
	"log/slog"
	"sync"

	"github.com/cedarbrook-wellness/content-service/internal/types"
)

// Hub maintains the set of connected admin dashboards and broadcasts
// upload events to them
type Hub struct {
	// Registered clients mapped by admin ID
	clients map[string]*Client

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Mutex to protect clients map
	mu sync.RWMutex

	// Channel to broadcast events
	broadcast chan *types.Event
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *types.Event, 64),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			// If the admin already has a connection, close the old one
			if existingClient, exists := h.clients[client.adminID]; exists {
				close(existingClient.send)
				slog.Info("Replaced existing WebSocket connection", slog.String("admin_id", client.adminID))
			}
			h.clients[client.adminID] = client
			h.mu.Unlock()
			slog.Info("WebSocket client connected", slog.String("admin_id", client.adminID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.adminID]; ok {
				delete(h.clients, client.adminID)
				close(client.send)
				slog.Info("WebSocket client disconnected", slog.String("admin_id", client.adminID))
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.broadcastToClients(event)
		}
	}
}

// RegisterClient registers a new client
func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

// UnregisterClient unregisters a client
func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// BroadcastToAll sends an event to every connected dashboard
func (h *Hub) BroadcastToAll(event *types.Event) {
	select {
	case h.broadcast <- event:
	default:
		slog.Warn("Broadcast channel is full, dropping event")
	}
}

// broadcastToClients is the internal method that actually sends events
func (h *Hub) broadcastToClients(event *types.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for adminID, client := range h.clients {
		err := client.SendEvent(event)
		if err != nil {
			slog.Error("Failed to send event to client",
				slog.String("admin_id", adminID),
				slog.String("error", err.Error()))
			// Remove the client if sending fails
			go func(c *Client) {
				h.unregister <- c
			}(client)
		}
	}
}

// GetConnectedAdmins returns a list of currently connected admin IDs
func (h *Hub) GetConnectedAdmins() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	admins := make([]string, 0, len(h.clients))
	for adminID := range h.clients {
		admins = append(admins, adminID)
	}
	return admins
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
