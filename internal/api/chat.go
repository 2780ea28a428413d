package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/varun8487/ai-ml/internal/chatbot"
	"github.com/varun8487/ai-ml/internal/db"
)

// ChatEngine processes chat messages and feedback submissions
type ChatEngine interface {
	ProcessMessage(ctx context.Context, userID, message string) (*chatbot.Reply, error)
	SubmitFeedback(ctx context.Context, chatID, feedback string) error
}

// ChatHandler handles the chat and feedback API endpoints
type ChatHandler struct {
	engine ChatEngine
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(engine ChatEngine, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		engine: engine,
		logger: logger,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat processes a single chat message
// POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.engine.ProcessMessage(c.Request.Context(), "anonymous", req.Message)
	if err != nil {
		h.logger.Error("chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	c.JSON(http.StatusOK, reply)
}

type feedbackRequest struct {
	ChatID   string `json:"chatId"`
	Feedback string `json:"feedback"`
}

// Feedback records feedback on a past chat exchange. Feedback referencing an
// unknown chat id is acknowledged without effect.
// POST /feedback
func (h *ChatHandler) Feedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChatID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chat id is required"})
		return
	}

	switch req.Feedback {
	case db.FeedbackPositive, db.FeedbackNegative, db.FeedbackNeutral:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feedback must be positive, negative or neutral"})
		return
	}

	if err := h.engine.SubmitFeedback(c.Request.Context(), req.ChatID, req.Feedback); err != nil {
		h.logger.Error("feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Feedback recorded"})
}
