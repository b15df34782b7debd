package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rmaulana/llama-chat/internal/api/response"
	"github.com/rmaulana/llama-chat/internal/domain"
	"github.com/rmaulana/llama-chat/internal/service"
)

var validate = validator.New()

// ChatHandler handles chat endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send handles one chat turn
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Message string `json:"message" validate:"required"`
		UserID  string `json:"user_id" validate:"required"`
		ChatID  string `json:"chat_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.chatService.Send(r.Context(), service.SendRequest{
		Message: input.Message,
		UserID:  input.UserID,
		ChatID:  input.ChatID,
	})
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, result)
}

// List returns a user's chats, newest first
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.BadRequest(w, "missing user_id")
		return
	}

	chats, err := h.chatService.ListChats(r.Context(), userID)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, chats)
}

// Messages returns the full message history of a chat
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	messages, err := h.chatService.GetMessages(r.Context(), chatID)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			response.NotFound(w, "chat not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, messages)
}

// Rename updates a chat title
func (h *ChatHandler) Rename(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	var input struct {
		Title string `json:"title" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.chatService.RenameChat(r.Context(), chatID, input.Title); err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			response.NotFound(w, "chat not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, nil)
}

// Delete removes a chat and all of its messages
func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	if err := h.chatService.DeleteChat(r.Context(), chatID); err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			response.NotFound(w, "chat not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, nil)
}
