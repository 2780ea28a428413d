package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestInsertChat(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO chats").
		WithArgs(sqlmock.AnyArg(), "anonymous", "hello", "Hi! How can I help?", "greeting", FeedbackNeutral).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := db.InsertChat(context.Background(), "anonymous", "hello", "Hi! How can I help?", "greeting")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == "" {
		t.Error("expected generated id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetChat(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "message", "response", "intent", "feedback", "created_at"}).
		AddRow("chat-1", "anonymous", "hello", "Hi!", "greeting", FeedbackNeutral, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM chats").
		WithArgs("chat-1").
		WillReturnRows(rows)

	chat, err := db.GetChat(context.Background(), "chat-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if chat == nil {
		t.Fatal("expected chat record")
	}
	if chat.Intent != "greeting" || chat.Feedback != FeedbackNeutral {
		t.Errorf("unexpected record: %+v", chat)
	}
}

func TestGetChatNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM chats").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "message", "response", "intent", "feedback", "created_at"}))

	chat, err := db.GetChat(context.Background(), "missing")
	if err != nil {
		t.Fatalf("expected no error for missing chat, got %v", err)
	}
	if chat != nil {
		t.Errorf("expected nil for missing chat, got %+v", chat)
	}
}

func TestUpdateChatFeedback(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE chats SET feedback").
		WithArgs(FeedbackPositive, "chat-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := db.UpdateChatFeedback(context.Background(), "chat-1", FeedbackPositive); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
