package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds a single frame write.
	writeWait = 10 * time.Second
	// pongWait is how long a silent peer survives; pings go out well inside
	// that window so an idle but responsive subscriber is never dropped.
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Client wraps one listener's socket. Outbound payloads go through Send so a
// stalled peer never blocks the producer.
type Client struct {
	UserID    string
	Conn      *websocket.Conn
	Send      chan []byte
	pingEvery time.Duration
	mu        sync.Mutex // protects conn writes
}

func NewClient(conn *websocket.Conn, userID string) *Client {
	return &Client{
		UserID:    userID,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		pingEvery: pingPeriod,
	}
}

// WriteLoop drains the Send channel onto the socket and keeps the connection
// alive with periodic pings. Returns when ctx is cancelled or Send closes.
func (c *Client) WriteLoop(ctx context.Context) {
	ticker := time.NewTicker(c.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.close()
			return
		case msg, ok := <-c.Send:
			if !ok {
				c.close()
				return
			}
			c.mu.Lock()
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
			c.mu.Unlock()
		case <-ticker.C:
			c.mu.Lock()
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.Conn.WriteMessage(websocket.PingMessage, []byte("ping"))
			c.mu.Unlock()
		}
	}
}

func (c *Client) close() {
	c.mu.Lock()
	_ = c.Conn.Close()
	c.mu.Unlock()
}

// SendMessage queues msg for delivery without blocking.
func (c *Client) SendMessage(msg []byte) {
	select {
	case c.Send <- msg:
	default:
		// Channel full, message dropped
	}
}
