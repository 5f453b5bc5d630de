package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

// Client is one authenticated WebSocket connection.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager is the realtime publish/subscribe hub. Connection lifecycle
// is explicit: a client is registered after a successful upgrade and
// unregistered (with its send channel closed) when its read loop ends
// or the hub context is cancelled.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the hub loop until ctx is cancelled.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				// A reconnect replaces the previous connection.
				if old, ok := m.clients[client.UserID]; ok {
					close(old.Send)
				}
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("Realtime client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if current, ok := m.clients[client.UserID]; ok && current == client {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Realtime client unregistered: %s", client.UserID)

			case <-ctx.Done():
				m.mutex.Lock()
				for id, client := range m.clients {
					close(client.Send)
					delete(m.clients, id)
				}
				m.mutex.Unlock()
				return
			}
		}
	}()
}

// SendToUser delivers a payload to one user if connected; disconnected
// users are skipped, delivery is best-effort.
func (m *Manager) SendToUser(userID string, message []byte) {
	// The send channel is only closed while the write lock is held, so
	// keeping the read lock across the send guarantees the channel is
	// still open here.
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	client, ok := m.clients[userID]
	if !ok {
		return
	}

	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping realtime payload for slow client %s", userID)
	}
}

// SendToUsers fans a payload out to each listed user except the sender.
func (m *Manager) SendToUsers(userIDs []string, exceptUserID string, message []byte) {
	for _, id := range userIDs {
		if id != exceptUserID {
			m.SendToUser(id, message)
		}
	}
}

func (m *Manager) Connected(userID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

// ReadPump drains incoming frames until the connection errors, then
// unregisters the client.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Realtime read error for %s: %v", c.UserID, err)
			}
			return
		}
	}
}

// WritePump forwards queued payloads to the connection until the send
// channel closes.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Realtime write error for %s: %v", c.UserID, err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
