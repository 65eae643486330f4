package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event tells a connected dashboard which collection changed so it can
// re-render that slice of the UI.
type Event struct {
	Entity string    `json:"entity"`
	At     time.Time `json:"at"`
}

// Hub fans store-change notifications out to connected dashboards.
type Hub struct {
	mutex       sync.RWMutex
	connections map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[conn] = true
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast sends the event to every dashboard, dropping connections
// that fail to take the write.
func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for conn := range h.connections {
		conns = append(conns, conn)
	}
	h.mutex.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(conn)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.connections {
		_ = conn.Close()
	}
	h.connections = make(map[*websocket.Conn]bool)
}
