package app

import (
	"os"
	"strconv"
	"time"

	"github.com/taskhive/taskhive/pkg/jwtx"
)

type Config struct {
	SigningSecret string // Required: HMAC secret for token signing
	Issuer        string // Optional: issuer claim for tokens (default: taskhive)

	AccessTokenTTL  time.Duration // Optional: access token lifetime (default: 7 days)
	RefreshTokenTTL time.Duration // Optional: refresh token lifetime (default: 7 days)
	ResetTokenTTL   time.Duration // Optional: password reset token lifetime (default: 1h)

	DatabaseFile string // Optional: path to SQLite database file (default: ./taskhive.db)

	SMTPHost     string // Optional: SMTP host; empty disables outgoing email
	SMTPPort     int    // Optional: SMTP port (default: 587)
	SMTPUser     string // Optional: SMTP username
	SMTPPassword string // Optional: SMTP password
	SMTPFrom     string // Optional: From address (default: SMTP username)

	PushEndpoint string // Optional: push gateway URL; empty disables notifications

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		SigningSecret: os.Getenv("SIGNING_SECRET"),
		Issuer:        getEnvOrDefault("TOKEN_ISSUER", "taskhive"),

		AccessTokenTTL:  getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL: getEnvDurationOrDefault("REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		ResetTokenTTL:   getEnvDurationOrDefault("RESET_TOKEN_TTL", jwtx.DefaultResetTokenTTL),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "taskhive.db"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),

		PushEndpoint: os.Getenv("PUSH_ENDPOINT"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
