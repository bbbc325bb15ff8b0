package spectate

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// writeTimeout bounds one send so a stalled spectator cannot hold up the broadcast
var writeTimeout = 500 * time.Millisecond

// Conn wraps one spectator websocket
type Conn struct {
	ID     string
	Format Format
	ws     *websocket.Conn
	mu     sync.Mutex // protects ws writes and closed
	closed bool
}

// NewConn creates a new connection wrapper
func NewConn(ws *websocket.Conn, format Format) *Conn {
	return &Conn{
		ID:     uuid.New().String(),
		Format: format,
		ws:     ws,
	}
}

// Send writes one encoded snapshot in the frame type matching the format
// A write that misses writeTimeout fails and leaves the connection unusable
func (c *Conn) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	msgType := websocket.TextMessage
	if c.Format == FormatMsgpack {
		msgType = websocket.BinaryMessage
	}
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.ws.WriteMessage(msgType, data)
}

// Close marks connection closed
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// ReadLoop discards client frames until the peer goes away
// Spectators are read-only; reading is still needed to observe close frames
func (c *Conn) ReadLoop(onDisconnect func(*Conn)) {
	defer func() {
		onDisconnect(c)
		c.Close()
	}()

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[spectate] read error for %s: %v", c.ID, err)
			}
			return
		}
	}
}

// ConnManager manages all active connections
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewConnManager creates an empty connection manager
func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// Add registers a connection
func (m *ConnManager) Add(c *Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.ID] = c
}

// Remove unregisters a connection
func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of active connections
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

// Snapshot returns a copy of all current connections
func (m *ConnManager) Snapshot() []*Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Conn, 0, len(m.conns))
	for _, c := range m.conns {
		list = append(list, c)
	}
	return list
}
