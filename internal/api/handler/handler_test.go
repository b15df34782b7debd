package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmaulana/llama-chat/internal/api/handler"
	"github.com/rmaulana/llama-chat/internal/service"
)

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["success"] != true {
		t.Error("expected success to be true")
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}

	if data["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", data["status"])
	}
}

// Validation failures never reach the service, so a handler with zero-value
// dependencies is enough to exercise them.
func TestChatHandler_Send_Validation(t *testing.T) {
	h := handler.NewChatHandler(&service.ChatService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{"user_id": "u1"}`},
		{"missing user_id", `{"message": "hi"}`},
		{"empty body", `{}`},
		{"malformed json", `{"message":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.Send(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
		})
	}
}

func TestChatHandler_List_RequiresUserID(t *testing.T) {
	h := handler.NewChatHandler(&service.ChatService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chats", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestProfileHandler_Get_RequiresUserID(t *testing.T) {
	h := handler.NewProfileHandler(&service.ProfileService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
