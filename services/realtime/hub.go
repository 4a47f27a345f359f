package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/onesim/simcase/core"
	"github.com/onesim/simcase/core/simcase"
)

// Hub owns the set of connected realtime clients. The server only ever
// pushes to clients; inbound frames are read solely to detect closure.
type Hub struct {
	log core.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

var _ simcase.Broadcaster = (*Hub)(nil)

func NewHub(log core.Logger) *Hub {
	return &Hub{
		log:   log,
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Add registers a freshly upgraded connection and starts its watchdog
// read loop.
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	go h.readLoop(conn)
}

func (h *Hub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(conn)
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		_ = conn.Close()
	}
}

// Len reports the number of currently connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast pushes the event to every client connected right now.
// Delivery is best-effort and unacknowledged: a failed write means the
// client is gone and drops it from the set. The caller never learns how
// many clients received the event.
func (h *Hub) Broadcast(event simcase.ActivityEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error(fmt.Sprintf("marshaling activity event: %v", err), err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(h.conns, conn)
			_ = conn.Close()
		}
	}
}

// Close drops every client; used on server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}
