// Package config provides configuration for the SafeSpace backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the backend configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAcquireTimeout  time.Duration

	// Generation collaborator (Gemini)
	GeminiAPIKey      string
	GeminiBaseURL     string
	GeminiTimeout     time.Duration
	GeminiMaxAttempts int
	GeminiRetryBase   time.Duration
	GeminiRetryMax    time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:       getEnv("DATABASE_URL", "file:safespace.db?cache=shared&mode=rwc"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MS", 3600000)) * time.Millisecond,
		DBAcquireTimeout:  time.Duration(getEnvInt("DB_ACQUIRE_TIMEOUT_MS", 10000)) * time.Millisecond,
		GeminiAPIKey:      getEnv("GOOGLE_API_KEY", ""),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiTimeout:     time.Duration(getEnvInt("GEMINI_TIMEOUT_MS", 60000)) * time.Millisecond,
		GeminiMaxAttempts: getEnvInt("GEMINI_MAX_ATTEMPTS", 3),
		GeminiRetryBase:   time.Duration(getEnvInt("GEMINI_RETRY_BASE_MS", 1000)) * time.Millisecond,
		GeminiRetryMax:    time.Duration(getEnvInt("GEMINI_RETRY_MAX_MS", 30000)) * time.Millisecond,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

// GeminiConfigured reports whether the generation collaborator credential is
// present. A missing key never blocks startup; affected operations degrade.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
