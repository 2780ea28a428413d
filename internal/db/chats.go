package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chat feedback values
const (
	FeedbackPositive = "positive"
	FeedbackNegative = "negative"
	FeedbackNeutral  = "neutral"
)

// Chat represents one chat exchange. Feedback is the only mutable field.
type Chat struct {
	ID        string
	UserID    string
	Message   string
	Response  string
	Intent    string
	Feedback  string
	CreatedAt time.Time
}

// InsertChat persists a chat exchange with neutral feedback and returns its id
func (db *DB) InsertChat(ctx context.Context, userID, message, response, intent string) (string, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO chats (id, user_id, message, response, intent, feedback, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := db.ExecContext(ctx, query, id, userID, message, response, intent, FeedbackNeutral)
	if err != nil {
		return "", fmt.Errorf("failed to insert chat: %w", err)
	}

	return id, nil
}

// GetChat retrieves a chat record by id, returning (nil, nil) when not found
func (db *DB) GetChat(ctx context.Context, id string) (*Chat, error) {
	query := `
		SELECT id, user_id, message, response, intent, feedback, created_at
		FROM chats
		WHERE id = $1
	`

	row := db.QueryRowContext(ctx, query, id)

	var c Chat
	if err := row.Scan(&c.ID, &c.UserID, &c.Message, &c.Response, &c.Intent, &c.Feedback, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	return &c, nil
}

// UpdateChatFeedback sets the feedback value on a chat record
func (db *DB) UpdateChatFeedback(ctx context.Context, id, feedback string) error {
	query := `UPDATE chats SET feedback = $1 WHERE id = $2`

	if _, err := db.ExecContext(ctx, query, feedback, id); err != nil {
		return fmt.Errorf("failed to update chat feedback: %w", err)
	}

	return nil
}
