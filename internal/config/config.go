package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string

	// Provider secrets, resolved once at startup and injected into
	// handlers. Absence is only an error for the selected provider.
	OpenAIAPIKey   string
	GoogleAIAPIKey string

	// Provider call
	ProviderTimeout time.Duration

	// Request limits
	MaxRequestSize int64

	// Rate Limiting
	RateLimitRPS   int
	RateLimitBurst int

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		GoogleAIAPIKey: os.Getenv("GOOGLE_AI_API_KEY"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	// Parse durations and integers
	var err error
	cfg.ProviderTimeout, err = time.ParseDuration(getEnv("PROVIDER_TIMEOUT", "120s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}

	cfg.MaxRequestSize, err = strconv.ParseInt(getEnv("MAX_REQUEST_SIZE", "10485760"), 10, 64) // 10MB
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_REQUEST_SIZE: %w", err)
	}

	cfg.RateLimitRPS, err = strconv.Atoi(getEnv("RATE_LIMIT_RPS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}

	cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
