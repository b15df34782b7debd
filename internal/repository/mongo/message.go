package mongo

import (
	"context"
	"fmt"

	"github.com/rmaulana/llama-chat/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const messageCollection = "messages"

// MessageRepository implements domain.MessageRepository
type MessageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(client *Client) *MessageRepository {
	return &MessageRepository{collection: client.Database().Collection(messageCollection)}
}

// Create inserts a message
func (r *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// ListByChat returns all messages for a chat ordered ascending by
// created_at. ObjectIDs are monotonic per process, so sorting on _id as a
// secondary key keeps same-timestamp messages in insertion order.
func (r *MessageRepository) ListByChat(ctx context.Context, chatID string) ([]domain.Message, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"chat_id": chatID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []domain.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	return messages, nil
}

// DeleteByChat removes every message belonging to a chat
func (r *MessageRepository) DeleteByChat(ctx context.Context, chatID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"chat_id": chatID}); err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	return nil
}
