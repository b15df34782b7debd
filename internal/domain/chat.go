package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrChatNotFound is returned when a chat id does not resolve to a stored chat
var ErrChatNotFound = errors.New("chat not found")

// DefaultChatTitle is assigned to chats created implicitly on first message
const DefaultChatTitle = "New Chat"

// Chat represents a conversation thread owned by a user
type Chat struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Title     string             `json:"title" bson:"title"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// ChatRepository defines the interface for chat storage
type ChatRepository interface {
	// Create inserts a chat and returns its assigned id as a hex string.
	Create(ctx context.Context, chat *Chat) (string, error)

	// Get retrieves a chat by id
	Get(ctx context.Context, chatID string) (*Chat, error)

	// ListByUser returns all chats for a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]Chat, error)

	// UpdateTitle renames a chat
	UpdateTitle(ctx context.Context, chatID, title string) error

	// Delete removes the chat record only; callers must delete its
	// messages first so a partial failure never strands orphans.
	Delete(ctx context.Context, chatID string) error
}
