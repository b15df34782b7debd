package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Prompt    PromptConfig    `mapstructure:"prompt"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type MongoConfig struct {
	URI      string        `mapstructure:"uri"`
	Database string        `mapstructure:"database"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled reports whether a Redis instance is configured at all; rate
// limiting is skipped when it is not.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type LLMConfig struct {
	Host          string        `mapstructure:"host"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxTokens     int           `mapstructure:"max_tokens"`
	Temperature   float64       `mapstructure:"temperature"`
	TopP          float64       `mapstructure:"top_p"`
	RepeatPenalty float64       `mapstructure:"repeat_penalty"`
}

// PromptConfig bounds the rendered prompt. Zero disables a limit.
type PromptConfig struct {
	MaxTurns int `mapstructure:"max_turns"`
	MaxBytes int `mapstructure:"max_bytes"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "15s")

	// Mongo
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "chat_app")
	v.SetDefault("mongo.timeout", "10s")

	// Redis (optional; empty host disables rate limiting)
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// LLM
	v.SetDefault("llm.host", "http://localhost:8080")
	v.SetDefault("llm.timeout", "300s")
	v.SetDefault("llm.max_tokens", 384)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.top_p", 0.9)
	v.SetDefault("llm.repeat_penalty", 1.1)

	// Prompt budget
	v.SetDefault("prompt.max_turns", 0)
	v.SetDefault("prompt.max_bytes", 0)

	// Rate limit
	v.SetDefault("rate_limit.requests_per_minute", 60)
	v.SetDefault("rate_limit.burst", 10)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("mongo.uri", "MONGODB_URI")
	v.BindEnv("mongo.database", "MONGODB_DATABASE")

	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	v.BindEnv("llm.host", "LLAMA_HOST")

	v.BindEnv("server.port", "SERVER_PORT")
}
