package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmaulana/llama-chat/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatCollection = "chats"

// ChatRepository implements domain.ChatRepository
type ChatRepository struct {
	collection *mongo.Collection
}

// NewChatRepository creates a new chat repository
func NewChatRepository(client *Client) *ChatRepository {
	return &ChatRepository{collection: client.Database().Collection(chatCollection)}
}

// Create inserts a chat and returns the store-assigned id as a hex string
func (r *ChatRepository) Create(ctx context.Context, chat *domain.Chat) (string, error) {
	res, err := r.collection.InsertOne(ctx, chat)
	if err != nil {
		return "", fmt.Errorf("failed to create chat: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	chat.ID = id

	return id.Hex(), nil
}

// Get retrieves a chat by its hex id
func (r *ChatRepository) Get(ctx context.Context, chatID string) (*domain.Chat, error) {
	oid, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return nil, domain.ErrChatNotFound
	}

	var chat domain.Chat
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&chat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	return &chat, nil
}

// ListByUser returns all chats for a user, newest first
func (r *ChatRepository) ListByUser(ctx context.Context, userID string) ([]domain.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer cursor.Close(ctx)

	chats := []domain.Chat{}
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, fmt.Errorf("failed to decode chats: %w", err)
	}

	return chats, nil
}

// UpdateTitle renames a chat
func (r *ChatRepository) UpdateTitle(ctx context.Context, chatID, title string) error {
	oid, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return domain.ErrChatNotFound
	}

	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"title": title}})
	if err != nil {
		return fmt.Errorf("failed to update chat title: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrChatNotFound
	}

	return nil
}

// Delete removes the chat record. Message cleanup is the caller's job and
// must happen before this call.
func (r *ChatRepository) Delete(ctx context.Context, chatID string) error {
	oid, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return domain.ErrChatNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrChatNotFound
	}

	return nil
}
