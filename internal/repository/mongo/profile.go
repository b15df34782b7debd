package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmaulana/llama-chat/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const profileCollection = "profiles"

// ProfileRepository implements domain.ProfileRepository
type ProfileRepository struct {
	collection *mongo.Collection
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{collection: client.Database().Collection(profileCollection)}
}

// GetByUser retrieves the profile for a user
func (r *ProfileRepository) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// Update overwrites the mutable profile fields for a user
func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	update := bson.M{"$set": bson.M{
		"username":   profile.Username,
		"avatar_url": profile.AvatarURL,
		"updated_at": profile.UpdatedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"user_id": profile.UserID}, update)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
