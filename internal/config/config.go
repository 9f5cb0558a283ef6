// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime settings for the server and pipeline.
type Config struct {
	// ServiceURL is the base URL of the SAM inference service.
	ServiceURL string

	// RequestTimeout bounds one generator call, inference included.
	RequestTimeout time.Duration

	// ResizeWidth is the default first-stage resize target, used when a
	// request does not override it.
	ResizeWidth int

	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string
}

// Load reads the configuration from environment variables, falling back to
// defaults suitable for a locally running inference service.
func Load() *Config {
	return &Config{
		ServiceURL:     getEnv("SEGMENT_MCP_SERVICE_URL", "http://127.0.0.1:9010"),
		RequestTimeout: time.Duration(getEnvAsInt("SEGMENT_MCP_TIMEOUT_SECONDS", 120)) * time.Second,
		ResizeWidth:    getEnvAsInt("SEGMENT_MCP_RESIZE_WIDTH", 1024),
		LogLevel:       getEnv("SEGMENT_MCP_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
