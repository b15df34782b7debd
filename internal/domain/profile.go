package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrProfileNotFound is returned when no profile exists for a user
var ErrProfileNotFound = errors.New("profile not found")

// Profile holds display settings for a user. Pure pass-through storage.
type Profile struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Username  string             `json:"username" bson:"username"`
	AvatarURL string             `json:"avatar_url" bson:"avatar_url"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProfileRepository defines the interface for profile storage
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}
