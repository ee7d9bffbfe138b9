// Package share streams the host's board to read-only viewers on the LAN
// and handles discovering a host to watch.
package share

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"ChalkTalk/internal/board"

	"github.com/gorilla/websocket"
)

// Message types on the share socket.
const (
	MessageBatch = "batch"
	MessageClear = "clear"
	MessageUndo  = "undo"
)

// Message is one board event relayed from host to viewers.
type Message struct {
	Type     string          `json:"type"`
	Commands []board.Command `json:"commands,omitempty"`
}

// Hub is the host side: it accepts viewer websockets and fans board events
// out to all of them.
type Hub struct {
	mu       sync.RWMutex
	conns    map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]bool),
		// Viewers are on the local network; any origin is fine.
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}
}

// ServeHTTP upgrades a viewer connection and keeps it registered until the
// viewer goes away. Viewers never send board events; reads only detect the
// close.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[share] upgrade failed: %v", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()
	log.Printf("[share] viewer connected: %s", conn.RemoteAddr())
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
	log.Printf("[share] viewer disconnected: %s", conn.RemoteAddr())
}

// Broadcast sends a message to every connected viewer.
func (h *Hub) Broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("[share] send to %s failed: %v", conn.RemoteAddr(), err)
		}
	}
}

// ViewerCount reports how many viewers are connected.
func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Serve runs the share endpoint on the given port, blocking. Board events
// are published at /ws.
func Serve(port int, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	log.Printf("[share] listening on port %d", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

// Attach wires a session's events into the hub so every enqueue, undo and
// clear reaches the viewers.
func Attach(sess *board.Session, hub *Hub) {
	sess.OnBatch = func(batch []board.Command) {
		hub.Broadcast(Message{Type: MessageBatch, Commands: batch})
	}
	sess.OnClear = func() {
		hub.Broadcast(Message{Type: MessageClear})
	}
	sess.OnUndo = func() {
		hub.Broadcast(Message{Type: MessageUndo})
	}
}
