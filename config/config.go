// Package config handles configuration loading for the blog service.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultSecret = "change-me-in-production"

// Config holds all configuration for the blog service.
type Config struct {
	Port      string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() *Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	secret := getEnv("JWT_SECRET", defaultSecret)
	if secret == defaultSecret {
		log.Println("WARNING: using default JWT secret; set JWT_SECRET in production")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: secret,
		TokenTTL:  parseDuration(getEnv("TOKEN_TTL", "30m"), 30*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
