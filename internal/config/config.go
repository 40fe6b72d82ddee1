// internal/config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string

	// DatabaseURL empty means "run on the in-memory store" (development mode).
	DatabaseURL string
	RedisURL    string

	JWTSecret    string
	SessionHours int

	// OAuth portal that owns login; we only exchange codes and set cookies.
	OAuthPortalURL    string
	OAuthClientID     string
	OAuthClientSecret string

	// Stale-enrichment sweep
	SweepSchedule      string
	ProcessingTimeout  int // minutes a lead may sit in "processing"

	// Frontend URL for CORS
	FrontendURL string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("API_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),

		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		SessionHours: getEnvInt("SESSION_HOURS", 24*7),

		OAuthPortalURL:    getEnv("OAUTH_PORTAL_URL", ""),
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OAUTH_CLIENT_SECRET", ""),

		SweepSchedule:     getEnv("SWEEP_SCHEDULE", "*/10 * * * *"),
		ProcessingTimeout: getEnvInt("PROCESSING_TIMEOUT_MINUTES", 30),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

// UseMemoryStore reports whether the process should run against the
// in-memory fallback instead of Postgres.
func (c *Config) UseMemoryStore() bool {
	return c.DatabaseURL == ""
}

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
