package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rmaulana/llama-chat/internal/api/handler"
	customMiddleware "github.com/rmaulana/llama-chat/internal/api/middleware"
	"github.com/rmaulana/llama-chat/internal/config"
	"github.com/rmaulana/llama-chat/internal/history"
	"github.com/rmaulana/llama-chat/internal/llm"
	"github.com/rmaulana/llama-chat/internal/repository/mongo"
	"github.com/rmaulana/llama-chat/internal/repository/redis"
	"github.com/rmaulana/llama-chat/internal/service"
)

// NewRouter creates and configures the HTTP router. redisClient may be nil,
// in which case rate limiting is disabled.
func NewRouter(cfg *config.Config, mongoClient *mongo.Client, redisClient *redis.Client, engine llm.Engine) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize repositories
	chatRepo := mongo.NewChatRepository(mongoClient)
	messageRepo := mongo.NewMessageRepository(mongoClient)
	profileRepo := mongo.NewProfileRepository(mongoClient)

	// Initialize services
	formatter := history.NewFormatter(history.Budget{
		MaxTurns: cfg.Prompt.MaxTurns,
		MaxBytes: cfg.Prompt.MaxBytes,
	})
	params := llm.Params{
		MaxTokens:     cfg.LLM.MaxTokens,
		Temperature:   cfg.LLM.Temperature,
		TopP:          cfg.LLM.TopP,
		RepeatPenalty: cfg.LLM.RepeatPenalty,
		Stop:          llm.DefaultParams().Stop,
	}
	chatService := service.NewChatService(chatRepo, messageRepo, engine, formatter, params)
	profileService := service.NewProfileService(profileRepo)

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	profileHandler := handler.NewProfileHandler(profileService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(mongoClient))

		r.Group(func(r chi.Router) {
			if redisClient != nil {
				rateLimiter := redis.NewRateLimiter(
					redisClient,
					cfg.RateLimit.RequestsPerMinute,
					cfg.RateLimit.Burst,
				)
				r.Use(customMiddleware.NewRateLimitMiddleware(rateLimiter).Limit)
			}

			r.Post("/chat", chatHandler.Send)

			r.Route("/chats", func(r chi.Router) {
				r.Get("/", chatHandler.List)

				r.Route("/{chatID}", func(r chi.Router) {
					r.Get("/messages", chatHandler.Messages)
					r.Put("/", chatHandler.Rename)
					r.Delete("/", chatHandler.Delete)
				})
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Post("/", profileHandler.Create)
				r.Put("/", profileHandler.Update)
			})
		})
	})

	return r
}
