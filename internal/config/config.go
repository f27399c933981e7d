package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Backend API configuration
	API APIConfig

	// Outbound rate limiting configuration
	RateLimit RateLimitConfig

	// Session persistence configuration
	Session SessionConfig

	// Logging configuration
	Logging LoggingConfig

	// Application metadata
	App AppConfig
}

// APIConfig holds backend API client configuration
type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// RateLimitConfig holds outbound request rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
}

// SessionConfig holds session persistence configuration
type SessionConfig struct {
	FilePath string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:        getEnvOrDefault("CIVICPULSE_API_BASE_URL", "http://localhost:5000/api"),
			RequestTimeout: getDurationOrDefault("CIVICPULSE_REQUEST_TIMEOUT", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getBoolOrDefault("CIVICPULSE_RATE_LIMIT_ENABLED", true),
			RequestsPerSecond: getFloatOrDefault("CIVICPULSE_RATE_LIMIT_RPS", 10),
			BurstSize:         getIntOrDefault("CIVICPULSE_RATE_LIMIT_BURST", 20),
		},
		Session: SessionConfig{
			FilePath: getEnvOrDefault("CIVICPULSE_SESSION_FILE", defaultSessionPath()),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("CIVICPULSE_LOG_LEVEL", "info"),
			Format: getEnvOrDefault("CIVICPULSE_LOG_FORMAT", "text"),
		},
		App: AppConfig{
			Name:        getEnvOrDefault("CIVICPULSE_APP_NAME", "civicpulse-cli"),
			Version:     getEnvOrDefault("CIVICPULSE_APP_VERSION", "dev"),
			Environment: getEnvOrDefault("CIVICPULSE_ENV", "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []string

	if c.API.BaseURL == "" {
		errs = append(errs, "CIVICPULSE_API_BASE_URL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		errs = append(errs, "CIVICPULSE_API_BASE_URL must be an http(s) URL")
	}
	if c.Session.FilePath == "" {
		errs = append(errs, "CIVICPULSE_SESSION_FILE is required")
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, "CIVICPULSE_RATE_LIMIT_RPS must be positive when rate limiting is enabled")
	}

	if len(errs) > 0 {
		return errors.New("configuration errors:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// defaultSessionPath places the session file under the user home
// directory, falling back to the working directory when home is
// unavailable.
func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".civicpulse-session.json"
	}
	return filepath.Join(home, ".civicpulse", "session.json")
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
