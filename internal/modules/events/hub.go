package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Change tells a connected consumer that one of its cached listings went
// stale. It carries enough to decide what to refetch, not the row itself.
type Change struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

// connection serializes writes: gorilla/websocket allows at most one
// concurrent writer per conn, and notifications race with the ping loop.
type connection struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

func (c *connection) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.ws.WriteJSON(v)
}

func (c *connection) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.ws.WriteMessage(websocket.PingMessage, nil)
}

type Hub struct {
	connections map[string]*connection
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*connection),
	}
}

func (h *Hub) Register(userID string, ws *websocket.Conn) *connection {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.connections[userID]; exists && old != nil {
		_ = old.ws.Close()
	}

	conn := &connection{ws: ws}
	h.connections[userID] = conn
	return conn
}

func (h *Hub) Unregister(userID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.ws.Close()
		delete(h.connections, userID)
	}
}

func (h *Hub) SendToUser(userID string, message interface{}) bool {
	h.mutex.RLock()
	conn, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.writeJSON(message); err != nil {
		h.Unregister(userID)
		return false
	}

	return true
}

// NotifyChanged satisfies the ChangeNotifier interfaces of the entity
// modules. Delivery is best effort: an offline consumer just misses it.
func (h *Hub) NotifyChanged(userID, entity, action, id string) {
	h.SendToUser(userID, Change{
		Entity: entity,
		Action: action,
		ID:     id,
		At:     time.Now(),
	})
}

func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.ws.Close()
		}
		delete(h.connections, userID)
	}
}
