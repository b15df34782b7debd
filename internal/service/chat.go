package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rmaulana/llama-chat/internal/domain"
	"github.com/rmaulana/llama-chat/internal/history"
	"github.com/rmaulana/llama-chat/internal/llm"
	"github.com/rs/zerolog/log"
)

// SendRequest is one incoming chat message. ChatID is empty for the first
// message of a new conversation.
type SendRequest struct {
	Message string
	UserID  string
	ChatID  string
}

// SendResult carries the generated reply. Latency is wall-clock inference
// time in seconds, rounded to two decimals.
type SendResult struct {
	Response string  `json:"response"`
	Latency  float64 `json:"latency"`
	ChatID   string  `json:"chat_id"`
}

// ChatService orchestrates one chat turn: resolve the chat, rebuild its
// history into a prompt, run inference, and persist the exchange.
type ChatService struct {
	chatRepo    domain.ChatRepository
	messageRepo domain.MessageRepository
	engine      llm.Engine
	formatter   *history.Formatter
	params      llm.Params
}

// NewChatService creates a new chat service
func NewChatService(
	chatRepo domain.ChatRepository,
	messageRepo domain.MessageRepository,
	engine llm.Engine,
	formatter *history.Formatter,
	params llm.Params,
) *ChatService {
	return &ChatService{
		chatRepo:    chatRepo,
		messageRepo: messageRepo,
		engine:      engine,
		formatter:   formatter,
		params:      params,
	}
}

// Send processes one chat turn. Any failing step aborts the whole request;
// nothing is persisted unless inference succeeded. The two inserts are not
// atomic: a crash between them leaves a dangling user turn, which
// history.Reconstruct tolerates on the next request.
//
// Concurrent Sends against the same chat id are not serialized; their
// history reads may interleave with each other's writes.
func (s *ChatService) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	requestID := uuid.New().String()

	// 1. Resolve chat
	chatID := req.ChatID
	isNewChat := chatID == ""
	if isNewChat {
		id, err := s.chatRepo.Create(ctx, &domain.Chat{
			UserID:    req.UserID,
			Title:     domain.DefaultChatTitle,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create chat: %w", err)
		}
		chatID = id
	}

	// 2. Fetch history
	messages, err := s.messageRepo.ListByChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	// 3. Reconstruct and format
	pairs := history.Reconstruct(messages)
	prompt := s.formatter.Format(pairs, req.Message)

	// 4. Inference
	start := time.Now()
	completion, err := s.engine.Complete(ctx, prompt, s.params)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}
	latency := math.Round(time.Since(start).Seconds()*100) / 100

	// 5. Persist both sides of the exchange, user first. Timestamps are
	// taken per insert so creation order survives into future fetches.
	userMsg := &domain.Message{
		ChatID:    chatID,
		UserID:    req.UserID,
		Sender:    domain.SenderUser,
		Content:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	botMsg := &domain.Message{
		ChatID:    chatID,
		UserID:    req.UserID,
		Sender:    domain.SenderBot,
		Content:   completion.Text,
		CreatedAt: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, botMsg); err != nil {
		return nil, fmt.Errorf("failed to save bot message: %w", err)
	}

	// New chats get titled after their first question. Best effort.
	if isNewChat {
		if err := s.chatRepo.UpdateTitle(ctx, chatID, titleFromMessage(req.Message)); err != nil {
			log.Error().Err(err).Str("chat_id", chatID).Msg("failed to update chat title")
		}
	}

	log.Info().
		Str("request_id", requestID).
		Str("chat_id", chatID).
		Int("history_turns", len(pairs)).
		Int("tokens_used", completion.TokensUsed).
		Float64("latency", latency).
		Msg("generated chat response")

	return &SendResult{
		Response: completion.Text,
		Latency:  latency,
		ChatID:   chatID,
	}, nil
}

// ListChats returns a user's chats, newest first
func (s *ChatService) ListChats(ctx context.Context, userID string) ([]domain.Chat, error) {
	return s.chatRepo.ListByUser(ctx, userID)
}

// GetMessages returns the full ascending message history of a chat
func (s *ChatService) GetMessages(ctx context.Context, chatID string) ([]domain.Message, error) {
	if _, err := s.chatRepo.Get(ctx, chatID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListByChat(ctx, chatID)
}

// RenameChat updates a chat title
func (s *ChatService) RenameChat(ctx context.Context, chatID, title string) error {
	return s.chatRepo.UpdateTitle(ctx, chatID, title)
}

// DeleteChat removes a chat and everything in it. Messages go first so a
// failure midway never leaves messages pointing at a missing chat.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	if err := s.messageRepo.DeleteByChat(ctx, chatID); err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}
	if err := s.chatRepo.Delete(ctx, chatID); err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	return nil
}

func titleFromMessage(message string) string {
	runes := []rune(message)
	if len(runes) > 30 {
		return string(runes[:30]) + "..."
	}
	return message
}
