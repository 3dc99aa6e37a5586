package ws

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Manager keeps track of websocket subscribers per user.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[string]map[*websocket.Conn]struct{} // userID -> conns
}

func NewManager() *Manager {
	return &Manager{subscribers: make(map[string]map[*websocket.Conn]struct{})}
}

// Register subscribes conn to the feed of userID.
func (m *Manager) Register(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conns, ok := m.subscribers[userID]
	if !ok {
		conns = make(map[*websocket.Conn]struct{})
		m.subscribers[userID] = conns
	}
	conns[conn] = struct{}{}
}

// Unregister removes and closes conn.
func (m *Manager) Unregister(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remove(userID, conn)
}

func (m *Manager) remove(userID string, conn *websocket.Conn) {
	conns, ok := m.subscribers[userID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; ok {
		_ = conn.Close()
		delete(conns, conn)
	}
	if len(conns) == 0 {
		delete(m.subscribers, userID)
	}
}

// Broadcast sends payload to every subscriber of userID and returns how many
// received it. Subscribers that fail to receive are dropped.
func (m *Manager) Broadcast(userID string, payload []byte) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	sent := 0
	for conn := range m.subscribers[userID] {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("dropping feed subscriber of %s: %v", userID, err)
			m.remove(userID, conn)
			continue
		}
		sent++
	}
	return sent
}

// Count returns the number of subscribers of userID.
func (m *Manager) Count(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers[userID])
}

// List returns the ids of users that currently have subscribers.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.subscribers))
	for id := range m.subscribers {
		ids = append(ids, id)
	}
	return ids
}
