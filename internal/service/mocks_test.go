package service

import (
	"context"

	"github.com/rmaulana/llama-chat/internal/domain"
	"github.com/rmaulana/llama-chat/internal/llm"
	"github.com/stretchr/testify/mock"
)

// MockChatRepository mocks the ChatRepository interface
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(ctx context.Context, chat *domain.Chat) (string, error) {
	args := m.Called(ctx, chat)
	return args.String(0), args.Error(1)
}

func (m *MockChatRepository) Get(ctx context.Context, chatID string) (*domain.Chat, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockChatRepository) ListByUser(ctx context.Context, userID string) ([]domain.Chat, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chat), args.Error(1)
}

func (m *MockChatRepository) UpdateTitle(ctx context.Context, chatID, title string) error {
	args := m.Called(ctx, chatID, title)
	return args.Error(0)
}

func (m *MockChatRepository) Delete(ctx context.Context, chatID string) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

// MockMessageRepository mocks the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock

	// created records every message passed to Create, in call order.
	created []*domain.Message
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	if args.Error(0) == nil {
		m.created = append(m.created, message)
	}
	return args.Error(0)
}

func (m *MockMessageRepository) ListByChat(ctx context.Context, chatID string) ([]domain.Message, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageRepository) DeleteByChat(ctx context.Context, chatID string) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

// MockProfileRepository mocks the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUser(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockEngine mocks the llm.Engine interface
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Complete(ctx context.Context, prompt string, params llm.Params) (*llm.Completion, error) {
	args := m.Called(ctx, prompt, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Completion), args.Error(1)
}
