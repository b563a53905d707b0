// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the server, the catalog client, and optional error tracking.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ValidationMode selects which configuration values are required.
type ValidationMode int

const (
	// ServerMode validates the values needed by the interaction server.
	ServerMode ValidationMode = iota

	// RegisterMode validates the values needed by the one-shot command
	// registration binary. The bot token is only used there; the serving
	// path authenticates follow-ups with the interaction token instead.
	RegisterMode
)

// Config holds all application configuration
type Config struct {
	// Discord Application Configuration
	DiscordPublicKey string // Hex-encoded Ed25519 public key for request verification
	DiscordAppID     string // Application ID, used only by cmd/register; follow-ups are addressed by the interaction's own app ID
	DiscordToken     string // Bot token, used only by cmd/register
	DiscordGuildID   string // Optional guild scope for command registration

	// Catalog Configuration
	CatalogURL     string        // Listing endpoint returning a JSON array of media items
	MediaBaseURL   string        // Base address joined with an item path for display
	CatalogTimeout time.Duration // Timeout for the catalog fetch

	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Sentry Configuration (optional, disabled when DSN is empty)
	SentryDSN         string
	SentryEnvironment string
	SentryRelease     string
	SentrySampleRate  float64
}

// Load reads configuration from environment variables and validates it
// for the interaction server. It attempts to load a .env file first.
func Load() (*Config, error) {
	return LoadForMode(ServerMode)
}

// LoadForMode reads configuration from environment variables and validates
// the subset required by the given mode.
func LoadForMode(mode ValidationMode) (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordPublicKey: getEnv(EnvDiscordPublicKey, ""),
		DiscordAppID:     getEnv(EnvDiscordAppID, ""),
		DiscordToken:     getEnv(EnvDiscordToken, ""),
		DiscordGuildID:   getEnv(EnvDiscordGuildID, ""),

		CatalogURL:     getEnv(EnvCatalogURL, ""),
		MediaBaseURL:   getEnv(EnvMediaBaseURL, ""),
		CatalogTimeout: getDurationEnv(EnvCatalogTimeout, 10*time.Second),

		Port:            getEnv(EnvPort, "8080"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 30*time.Second),

		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentryRelease:     getEnv(EnvSentryRelease, ""),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),
	}

	if err := cfg.Validate(mode); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration values required by the mode are set.
func (c *Config) Validate(mode ValidationMode) error {
	var errs []error

	switch mode {
	case RegisterMode:
		if c.DiscordToken == "" {
			errs = append(errs, fmt.Errorf("%s is required", EnvDiscordToken))
		}
		if c.DiscordAppID == "" {
			errs = append(errs, fmt.Errorf("%s is required", EnvDiscordAppID))
		}
	default:
		if c.DiscordPublicKey == "" {
			errs = append(errs, fmt.Errorf("%s is required", EnvDiscordPublicKey))
		} else if _, err := hex.DecodeString(c.DiscordPublicKey); err != nil {
			// A malformed key fails every request at 401 instead of crashing;
			// surfacing it at startup saves the operator the confusion.
			errs = append(errs, fmt.Errorf("%s is not valid hex: %w", EnvDiscordPublicKey, err))
		}
		if c.CatalogURL == "" {
			errs = append(errs, fmt.Errorf("%s is required", EnvCatalogURL))
		} else if _, err := url.ParseRequestURI(c.CatalogURL); err != nil {
			errs = append(errs, fmt.Errorf("%s is not a valid URL: %w", EnvCatalogURL, err))
		}
		if c.MediaBaseURL == "" {
			errs = append(errs, fmt.Errorf("%s is required", EnvMediaBaseURL))
		}
		if c.Port == "" {
			errs = append(errs, errors.New("PORT is required"))
		}
		if c.CatalogTimeout <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvCatalogTimeout, c.CatalogTimeout))
		}
		if c.SentrySampleRate < 0 || c.SentrySampleRate > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", EnvSentrySampleRate, c.SentrySampleRate))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
