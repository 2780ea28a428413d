package chatbot

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/varun8487/ai-ml/internal/db"
)

// FallbackResponse is returned when a classified tag has no intent definition
const FallbackResponse = "I'm not sure about that. Would you like to know about PCOS symptoms or general information?"

// ClassifierInterface is the trained intent classifier the engine consults
type ClassifierInterface interface {
	Classify(text string) (string, float64, error)
	AddExample(text, tag string) error
}

// ChatStore persists chat exchanges and their feedback state
type ChatStore interface {
	InsertChat(ctx context.Context, userID, message, response, intent string) (string, error)
	GetChat(ctx context.Context, id string) (*db.Chat, error)
	UpdateChatFeedback(ctx context.Context, id, feedback string) error
}

// Reply is the shaped chat response returned to the client
type Reply struct {
	Message string `json:"message"`
	Intent  string `json:"intent"`
}

// Engine handles chat logic independent of transport: classify the message,
// select a response, persist the exchange.
type Engine struct {
	classifier ClassifierInterface
	intents    *IntentSet
	db         ChatStore
	logger     *zap.Logger
}

// NewEngine creates a new chat engine
func NewEngine(cls ClassifierInterface, intents *IntentSet, store ChatStore, logger *zap.Logger) *Engine {
	return &Engine{
		classifier: cls,
		intents:    intents,
		db:         store,
		logger:     logger,
	}
}

// ProcessMessage classifies a chat message, picks a response for the intent
// and persists the exchange. The persisted record starts with neutral
// feedback.
func (e *Engine) ProcessMessage(ctx context.Context, userID, message string) (*Reply, error) {
	tag, confidence, err := e.classifier.Classify(message)
	if err != nil {
		return nil, fmt.Errorf("failed to classify message: %w", err)
	}

	response := e.selectResponse(tag)

	if _, err := e.db.InsertChat(ctx, userID, message, response, tag); err != nil {
		return nil, fmt.Errorf("failed to save chat: %w", err)
	}

	e.logger.Info("chat processed",
		zap.String("intent", tag),
		zap.Float64("confidence", confidence),
	)

	return &Reply{Message: response, Intent: tag}, nil
}

// SubmitFeedback records feedback on a past chat exchange. An unknown chat id
// is a deliberate no-op. Positive feedback additionally feeds the original
// (message, intent) pair back into the classifier, which retrains in full.
func (e *Engine) SubmitFeedback(ctx context.Context, chatID, feedback string) error {
	chat, err := e.db.GetChat(ctx, chatID)
	if err != nil {
		return fmt.Errorf("failed to look up chat: %w", err)
	}
	if chat == nil {
		return nil
	}

	if err := e.db.UpdateChatFeedback(ctx, chatID, feedback); err != nil {
		return err
	}

	if feedback == db.FeedbackPositive {
		if err := e.classifier.AddExample(chat.Message, chat.Intent); err != nil {
			return fmt.Errorf("failed to retrain classifier: %w", err)
		}
		e.logger.Info("classifier retrained from feedback",
			zap.String("chat_id", chatID),
			zap.String("intent", chat.Intent),
		)
	}

	return nil
}

// selectResponse picks uniformly at random among the intent's responses,
// falling back to the fixed generic message for unknown tags
func (e *Engine) selectResponse(tag string) string {
	intent := e.intents.Find(tag)
	if intent == nil {
		return FallbackResponse
	}
	return intent.Responses[rand.Intn(len(intent.Responses))]
}
