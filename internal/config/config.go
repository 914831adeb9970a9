// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings. Every field has a working default so the
// service boots with an empty environment (in-memory store, no Redis).
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DatabaseURL is a postgres connection string. Empty selects the
	// in-memory store.
	DatabaseURL string
	// RedisAddr enables cross-instance snapshot fan-out when set.
	RedisAddr string
	// RedisDB selects the Redis logical database.
	RedisDB int
	// PlaceholderPlayers is how many synthetic players a freshly created
	// lobby is padded with, for solo testing of the client. 0 disables.
	PlaceholderPlayers int
	// CleanupInterval is how often the expired-lobby sweep runs.
	CleanupInterval time.Duration
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		PlaceholderPlayers: getEnvInt("PLACEHOLDER_PLAYERS", 0),
		CleanupInterval:    getEnvDuration("CLEANUP_INTERVAL", 30*time.Minute),
	}
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// getEnvDuration parses an environment variable as a time.Duration, else a default value.
func getEnvDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return v
}
