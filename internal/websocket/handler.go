package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"relay-chat/internal/broadcast"
	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Handler upgrades authenticated connections and streams every created
// message to the socket. Filtering by conversation is deliberately left to
// the client; every subscriber sees the full topic.
type Handler struct {
	tokens      *services.TokenService
	broadcaster *broadcast.Broadcaster
	log         *logger.Logger
	pongWait    time.Duration
	pingEvery   time.Duration
}

func NewHandler(tokens *services.TokenService, broadcaster *broadcast.Broadcaster, log *logger.Logger) *Handler {
	return &Handler{
		tokens:      tokens,
		broadcaster: broadcaster,
		log:         log,
		pongWait:    pongWait,
		pingEvery:   pingPeriod,
	}
}

func (h *Handler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("you are not authenticated", "UNAUTHENTICATED"))
		return
	}

	claims, err := h.tokens.Validate(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("token is invalid", "AUTHENTICATION_FAILED"))
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := NewClient(conn, claims.UserID)
	client.pingEvery = h.pingEvery
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := h.broadcaster.Subscribe()
	defer sub.Close()

	go client.WriteLoop(ctx)
	go h.pump(ctx, sub, client)

	if h.log != nil {
		h.log.Infof("subscriber connected: user=%s", claims.UserID)
	}

	// The subscription lives until the peer goes away: the read loop only
	// detects disconnects, and each pong extends the deadline so an idle
	// listener is never timed out.
	conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
		conn.SetReadDeadline(time.Now().Add(h.pongWait))
	}

	if h.log != nil {
		h.log.Infof("subscriber disconnected: user=%s", claims.UserID)
	}
}

func (h *Handler) pump(ctx context.Context, sub *broadcast.Subscription, client *Client) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.C:
			if !ok {
				return
			}
			payload, err := json.Marshal(httpdto.NewMessageDTO(msg))
			if err != nil {
				continue
			}
			client.SendMessage(payload)
		}
	}
}
