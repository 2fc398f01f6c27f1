package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backend selection values.
const (
	StoreBackendPostgres = "postgres"
	StoreBackendDynamoDB = "dynamodb"
)

// Persistence mode values. Async returns the response before the artifact
// write completes; sync waits for it (the write is best-effort either way).
const (
	PersistModeAsync = "async"
	PersistModeSync  = "sync"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	CORSOrigins []string

	// Downstream generation service
	DownstreamURL     string
	DownstreamTimeout time.Duration

	// Result cache (Redis)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Artifact store
	StoreBackend string
	StoreTable   string
	PersistMode  string
	AWSRegion    string

	// Database configuration (postgres store backend)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Rate limiting (0 disables)
	RateLimitPerHour int
}

// LoadConfig creates a new Config instance from environment variables,
// applying defaults where the variable is unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		CORSOrigins:       splitList(os.Getenv("CORS_ORIGINS")),
		DownstreamURL:     os.Getenv("DOWNSTREAM_URL"),
		DownstreamTimeout: time.Duration(getEnvInt("DOWNSTREAM_TIMEOUT_SECONDS", 30)) * time.Second,
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		CacheTTL:          time.Duration(getEnvInt("CACHE_TTL_HOURS", 24)) * time.Hour,
		StoreBackend:      getEnv("STORE_BACKEND", StoreBackendPostgres),
		StoreTable:        getEnv("STORE_TABLE", "recipes"),
		PersistMode:       getEnv("PERSIST_MODE", PersistModeAsync),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "autochef"),
		DBSSLMode:         getEnv("DB_SSL_MODE", "disable"),
		RateLimitPerHour:  getEnvInt("RATE_LIMIT_PER_HOUR", 0),
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validateConfig checks required values and closed-set fields.
func validateConfig(cfg *Config) error {
	var errs []string

	if cfg.DownstreamURL == "" {
		errs = append(errs, "required environment variable DOWNSTREAM_URL is not set")
	}
	if cfg.DownstreamTimeout <= 0 {
		errs = append(errs, "DOWNSTREAM_TIMEOUT_SECONDS must be positive")
	}
	if cfg.CacheTTL <= 0 {
		errs = append(errs, "CACHE_TTL_HOURS must be positive")
	}
	switch cfg.StoreBackend {
	case StoreBackendPostgres, StoreBackendDynamoDB:
	default:
		errs = append(errs, fmt.Sprintf("STORE_BACKEND must be %q or %q, got %q",
			StoreBackendPostgres, StoreBackendDynamoDB, cfg.StoreBackend))
	}
	switch cfg.PersistMode {
	case PersistModeAsync, PersistModeSync:
	default:
		errs = append(errs, fmt.Sprintf("PERSIST_MODE must be %q or %q, got %q",
			PersistModeAsync, PersistModeSync, cfg.PersistMode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
