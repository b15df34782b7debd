package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sender identifies which side of the conversation wrote a message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message represents a single chat message. Messages are immutable once
// written; they are only removed in bulk when their chat is deleted.
type Message struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ChatID    string             `json:"chat_id" bson:"chat_id"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Sender    Sender             `json:"sender" bson:"sender"`
	Content   string             `json:"content" bson:"content"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// MessageRepository defines the interface for message storage
type MessageRepository interface {
	// Create inserts a message. CreatedAt must already be set by the caller.
	Create(ctx context.Context, message *Message) error

	// ListByChat returns all messages for a chat ordered ascending by
	// created_at, ties broken by insertion order.
	ListByChat(ctx context.Context, chatID string) ([]Message, error)

	// DeleteByChat removes every message belonging to a chat.
	DeleteByChat(ctx context.Context, chatID string) error
}
