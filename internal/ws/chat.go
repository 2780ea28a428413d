package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/varun8487/ai-ml/internal/api"
	"github.com/varun8487/ai-ml/internal/api/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the HTTP layer
	},
}

// ChatHandler serves the chat engine over WebSocket connections
type ChatHandler struct {
	engine api.ChatEngine
	logger *zap.Logger
}

// NewChatHandler creates a new WebSocket chat handler
func NewChatHandler(engine api.ChatEngine, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		engine: engine,
		logger: logger,
	}
}

// IncomingMessage represents a message from the client
type IncomingMessage struct {
	Content string `json:"content"`
}

// OutgoingMessage represents a message to the client
type OutgoingMessage struct {
	Type    string `json:"type"` // "message" or "error"
	Content string `json:"content,omitempty"`
	Intent  string `json:"intent,omitempty"`
}

// HandleChat upgrades the connection and relays chat messages through the
// engine. All connections are anonymous.
// GET /ws/chat
func (h *ChatHandler) HandleChat(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	limiter := middleware.NewWebSocketLimiter(30)

	for {
		var msg IncomingMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			break
		}

		if msg.Content == "" {
			h.send(conn, OutgoingMessage{Type: "error", Content: "Message is required"})
			continue
		}

		if !limiter.Allow() {
			h.send(conn, OutgoingMessage{Type: "error", Content: "Rate limit exceeded. Please slow down."})
			continue
		}

		reply, err := h.engine.ProcessMessage(c.Request.Context(), "anonymous", msg.Content)
		if err != nil {
			h.logger.Error("websocket chat failed", zap.Error(err))
			h.send(conn, OutgoingMessage{Type: "error", Content: "Failed to process message"})
			continue
		}

		h.send(conn, OutgoingMessage{
			Type:    "message",
			Content: reply.Message,
			Intent:  reply.Intent,
		})
	}
}

func (h *ChatHandler) send(conn *websocket.Conn, msg OutgoingMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		h.logger.Warn("websocket write failed", zap.Error(err))
	}
}
