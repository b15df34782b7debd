package service

import (
	"context"
	"time"

	"github.com/rmaulana/llama-chat/internal/domain"
)

// ProfileService is pass-through storage for user profiles
type ProfileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo domain.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get retrieves the profile for a user
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profileRepo.GetByUser(ctx, userID)
}

// Create stores a new profile
func (s *ProfileService) Create(ctx context.Context, userID, username, avatarURL string) (*domain.Profile, error) {
	profile := &domain.Profile{
		UserID:    userID,
		Username:  username,
		AvatarURL: avatarURL,
		UpdatedAt: time.Now(),
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Update overwrites the profile fields for a user
func (s *ProfileService) Update(ctx context.Context, userID, username, avatarURL string) error {
	return s.profileRepo.Update(ctx, &domain.Profile{
		UserID:    userID,
		Username:  username,
		AvatarURL: avatarURL,
		UpdatedAt: time.Now(),
	})
}
