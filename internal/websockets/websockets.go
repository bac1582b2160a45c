package websockets

import (
	"server/internal/logger"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// Event is the table-change notification pushed to connected dashboards.
type Event struct {
	Type      string    `json:"type"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Manager tracks connected clients and fans events out to them. Broadcast
// is best-effort: a dead client is dropped, never surfaced to the HTTP
// operation that triggered the event.
type Manager struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     logger.Logger
}

func New() *Manager {
	return &Manager{
		clients: make(map[*websocket.Conn]struct{}),
		log:     logger.New("websockets"),
	}
}

// HandleWebSocket owns the connection for its lifetime. Clients only
// listen; inbound frames are drained and discarded until the peer closes.
func (m *Manager) HandleWebSocket(c *websocket.Conn) {
	log := m.log.Function("HandleWebSocket")

	m.register(c)
	defer m.unregister(c)

	log.Info("client connected", "remote", c.RemoteAddr().String())

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}

	log.Info("client disconnected", "remote", c.RemoteAddr().String())
}

func (m *Manager) Broadcast(eventType string, data any) {
	log := m.log.Function("Broadcast")

	event := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for client := range m.clients {
		if err := client.WriteJSON(event); err != nil {
			log.Warn("dropping unreachable client", "remote", client.RemoteAddr().String(), "error", err)
			client.Close()
			delete(m.clients, client)
		}
	}
}

func (m *Manager) ClientCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

func (m *Manager) register(c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[c] = struct{}{}
}

func (m *Manager) unregister(c *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, c)
	c.Close()
}
