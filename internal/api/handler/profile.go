package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rmaulana/llama-chat/internal/api/response"
	"github.com/rmaulana/llama-chat/internal/domain"
	"github.com/rmaulana/llama-chat/internal/service"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type profileInput struct {
	UserID    string `json:"user_id" validate:"required"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

// Get retrieves a user's profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.BadRequest(w, "missing user_id")
		return
	}

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			response.NotFound(w, "profile not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, profile)
}

// Create stores a new profile
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input profileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	profile, err := h.profileService.Create(r.Context(), input.UserID, input.Username, input.AvatarURL)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Created(w, profile)
}

// Update overwrites a user's profile fields
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input profileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.profileService.Update(r.Context(), input.UserID, input.Username, input.AvatarURL); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			response.NotFound(w, "profile not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, nil)
}
