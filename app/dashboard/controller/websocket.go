package controller

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: In production, restrict to specific origins
		return true
	},
}

// ServerEvent is pushed to connected dashboard clients.
type ServerEvent struct {
	Type    string `json:"type"`    // "dataset.reloaded", "ping"
	Payload any    `json:"payload"` // Event-specific data
}

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

// wsConn serializes writes to one client connection.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) send(event ServerEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteJSON(event)
}

// Hub tracks connected websocket clients and broadcasts events to them.
type Hub struct {
	mu     sync.Mutex
	conns  map[*wsConn]struct{}
	logger *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		conns:  make(map[*wsConn]struct{}),
		logger: logger,
	}
}

func (h *Hub) add(c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *Hub) remove(c *wsConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends the event to every connected client; clients that fail to
// take the write are dropped.
func (h *Hub) Broadcast(event ServerEvent) {
	h.mu.Lock()
	conns := make([]*wsConn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.send(event); err != nil {
			h.logger.Debug("Dropping websocket client", zap.Error(err))
			h.remove(c)
			_ = c.conn.Close()
		}
	}
}

// HandleWebSocket upgrades the connection and streams dataset events until
// the client goes away. Clients do not send application messages; the read
// loop exists to notice the close.
// Endpoint: GET /api/ws
func (c *Controller) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.App.Logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	client := &wsConn{conn: conn}
	c.Hub.add(client)
	c.App.Logger.Info("WebSocket client connected", zap.String("remote_addr", r.RemoteAddr))

	done := make(chan struct{})

	// Keepalive pings.
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := client.send(ServerEvent{
					Type:    "ping",
					Payload: map[string]int64{"timestamp": time.Now().Unix()},
				}); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	close(done)
	c.Hub.remove(client)
	_ = conn.Close()
	c.App.Logger.Info("WebSocket client disconnected", zap.String("remote_addr", r.RemoteAddr))
}
