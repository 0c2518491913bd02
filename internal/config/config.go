package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	ClickUp ClickUpConfig
	Server  ServerConfig
	Cache   CacheConfig
}

// ClickUpConfig holds ClickUp API connection details
type ClickUpConfig struct {
	APIToken       string
	BaseURL        string
	TimeoutSeconds int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Host string
}

// CacheConfig holds the client-side cache settings
type CacheConfig struct {
	TTL time.Duration
}

// LoadConfig loads configuration from environment variables. A missing API
// token is not fatal here: the server starts and upstream calls fail with a
// request error instead (the dashboard shows an error state, not a crash).
func LoadConfig() *Config {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return &Config{
		ClickUp: ClickUpConfig{
			APIToken:       getEnv("CLICKUP_API_TOKEN", ""),
			BaseURL:        getEnv("CLICKUP_API_BASE_URL", "https://api.clickup.com/api/v2"),
			TimeoutSeconds: getEnvInt("CLICKUP_TIMEOUT_SECONDS", 30),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8090"),
			Host: getEnv("HOST", "0.0.0.0"),
		},
		Cache: CacheConfig{
			TTL: time.Duration(getEnvInt("CACHE_TTL_MINUTES", 5)) * time.Minute,
		},
	}
}

// Helper functions for environment variable access
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
