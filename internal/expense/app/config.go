package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/spendtrack/pkg/jwtx"
)

type Config struct {
	Issuer    string        // Required: issuer claim for tokens
	KeyFile   string        // Optional: path to Ed25519 PKCS8 PEM (ephemeral key when unset)
	AccessTTL time.Duration // Optional: access token lifetime (default: 15m)

	DatabaseFile string // Optional: path to SQLite database file (default: ./expense.db)

	ExportBucket string // Optional: S3 bucket for expense exports (in-memory store when unset)
	ExportRegion string // Optional: S3 region (default: ap-southeast-2)
	AccessKey    string // Optional: static S3 access key id (default credential chain when unset)
	SecretKey    string // Optional: static S3 secret access key

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("EXPENSE_ISSUER"),
		KeyFile:             os.Getenv("EXPENSE_KEY_FILE"),
		AccessTTL:           getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		DatabaseFile:        getEnvOrDefault("EXPENSE_DATABASE_FILE", "expense.db"),
		ExportBucket:        os.Getenv("EXPORT_BUCKET"),
		ExportRegion:        getEnvOrDefault("EXPORT_REGION", "ap-southeast-2"),
		AccessKey:           os.Getenv("ACCESS_KEYID"),
		SecretKey:           os.Getenv("SECRET_KEYID"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "spendtrack"
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept duration strings ("1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Accept bare integers as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
