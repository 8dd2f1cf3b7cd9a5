package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Flash backends
const (
	FlashBackendCookie = "cookie"
	FlashBackendRedis  = "redis"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string

	// Uploads
	UploadDir       string // filesystem root, per-kind subdirectories are created under it
	UploadURLPrefix string // public URL prefix the stored path is built from
	MaxUploadBytes  int64

	// Flash messages
	FlashBackend string
	RedisURL     string
	FlashTTL     time.Duration

	// FormDistrict selects the ward list offered by the project form
	FormDistrict string

	// Logging
	LogDir      string // empty disables the log file
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     env,
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:     getTablePrefix(env),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		UploadURLPrefix: "/" + strings.Trim(getEnv("UPLOAD_URL_PREFIX", "/uploads"), "/"),
		MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 10<<20),
		FlashBackend:    getEnv("FLASH_BACKEND", FlashBackendCookie),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		FlashTTL:        getEnvAsDuration("FLASH_TTL", 5*time.Minute),
		FormDistrict:    getEnv("FORM_DISTRICT", "quan-7"),
		LogDir:          getEnv("LOG_DIR", ""),
		LogMaxFiles:     int(getEnvAsInt64("LOG_MAX_FILES", 10)),
	}
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	switch c.FlashBackend {
	case FlashBackendCookie, FlashBackendRedis:
	default:
		return fmt.Errorf("unknown FLASH_BACKEND %q", c.FlashBackend)
	}
	return nil
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix, ok := os.LookupEnv("TABLE_PREFIX"); ok {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}
