package handler

import (
	"net/http"

	"github.com/rmaulana/llama-chat/internal/api/response"
	"github.com/rmaulana/llama-chat/internal/repository/mongo"
)

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}

// ReadyCheck returns readiness status including store connectivity
func ReadyCheck(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := client.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "store not ready")
			return
		}

		response.OK(w, map[string]string{
			"status": "ready",
		})
	}
}
