package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rmaulana/llama-chat/internal/api"
	"github.com/rmaulana/llama-chat/internal/config"
	"github.com/rmaulana/llama-chat/internal/llm/llamacpp"
	"github.com/rmaulana/llama-chat/internal/repository/mongo"
	"github.com/rmaulana/llama-chat/internal/repository/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file - try multiple locations
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			break
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Logging)

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("llm_host", cfg.LLM.Host).
		Msg("Starting chat API server")

	// Initialize MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	mongoClient, err := mongo.NewClient(ctx, cfg.Mongo)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongoClient.Close(context.Background())

	// Initialize Redis (optional, drives rate limiting)
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisClient.Close()
	} else {
		log.Warn().Msg("Redis not configured, rate limiting disabled")
	}

	// Initialize inference engine
	engine := llamacpp.NewEngine(cfg.LLM.Host, cfg.LLM.Timeout)

	// Initialize router
	router := api.NewRouter(cfg, mongoClient, redisClient, engine)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Msgf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func setupLogger(cfg config.LoggingConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	switch {
	case cfg.File != "":
		writer, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationTime(24*time.Hour),
			rotatelogs.WithMaxAge(7*24*time.Hour),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open log file")
		}
		log.Logger = log.Output(writer)
	case cfg.Format == "console" || os.Getenv("ENV") != "production":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
