package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds gateway configuration loaded from environment variables.
type Config struct {
	Port           string
	BackendBaseURL string

	// Session settings
	SessionSecret string
	SessionTTL    time.Duration

	// Optional Redis session store
	RedisHost string
	RedisPort string

	// Optional Kafka audit trail
	KafkaBroker string
	AuditTopic  string
}

// Load returns gateway configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:           getEnv("GATEWAY_PORT", "8080"),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:5000/api"),
		SessionSecret:  getEnv("SESSION_SECRET", "dev-session-secret"),
		SessionTTL:     getDurationEnv("SESSION_TTL_MINUTES", 8*time.Hour),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		AuditTopic:     getEnv("AUDIT_TOPIC", "audit-events"),
	}
}

// RedisAddr returns the Redis address, or "" when no Redis host is configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv reads a duration in minutes from the environment.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	minutes, err := strconv.Atoi(value)
	if err != nil || minutes <= 0 {
		return defaultValue
	}
	return time.Duration(minutes) * time.Minute
}
