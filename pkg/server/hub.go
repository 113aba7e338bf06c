package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// MessageType names a websocket message.
type MessageType string

const (
	// Server to client.
	MessageRender MessageType = "render"

	// Client to server.
	MessagePause   MessageType = "pause"
	MessageResume  MessageType = "resume"
	MessageDismiss MessageType = "dismiss"
	MessageRemove  MessageType = "remove"
	MessageBlur    MessageType = "blur"
	MessageFocus   MessageType = "focus"
	MessageAction  MessageType = "action"
)

// Message is the websocket envelope in both directions.
type Message struct {
	Type MessageType `json:"type"`
	ID   string      `json:"id,omitempty"`
	HTML string      `json:"html,omitempty"`

	// Action is the clicked control of a MessageAction.
	Action string `json:"action,omitempty"`
}

const writeWait = 5 * time.Second

// client wraps a connection; gorilla allows one concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub manages the websocket clients of a server.
type Hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger

	// onConnect greets a new client through send. The client is already
	// registered, so broadcasts issued meanwhile reach it as well.
	onConnect func(send func(Message))
	// onMessage handles a decoded client message.
	onMessage func(Message)
}

// NewHub creates a hub.
func NewHub(logger *slog.Logger, checkOrigin func(r *http.Request) bool) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[*client]bool),
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin,
		},
	}
}

// HandleWebSocket upgrades the request and serves the connection until the
// client goes away.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	c := &client{conn: conn}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	h.logger.Debug("websocket client connected", "remote", req.RemoteAddr)

	if h.onConnect != nil {
		h.onConnect(func(msg Message) { h.send(c, msg) })
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Debug("invalid websocket message", "error", err)
			continue
		}
		if h.onMessage != nil {
			h.onMessage(msg)
		}
	}

	h.drop(c)
}

// Broadcast sends msg to all clients.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(data); err != nil {
			h.drop(c)
		}
	}
}

func (h *Hub) send(c *client, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := c.write(data); err != nil {
		h.drop(c)
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		c.conn.Close()
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		c.conn.Close()
		delete(h.clients, c)
	}
}
