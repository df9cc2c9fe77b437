package config

import (
	"os"
	"strconv"
	"strings"

	"doc-text-extractor/internal/domain"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	MaxFileSize    int64
	LogLevel       string
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	RequestTimeout int
	AllowedOrigins []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort: getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		// 3MB ceiling keeps the inflated base64 body under typical
		// serverless payload limits. Re-derive per deployment, not copy.
		MaxFileSize:    getEnvInt64OrDefault("MAX_FILE_SIZE", 3*1024*1024),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiAPIKey:   getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:    getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:  getEnvOrDefault("GEMINI_BASE_URL", defaultGeminiBaseURL),
		RequestTimeout: getEnvIntOrDefault("REQUEST_TIMEOUT", 120),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:4173",
			"http://localhost:3000",
		}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGeminiAPIKey returns the Gemini API credential
func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

// GetGeminiModel returns the Gemini model identifier
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetGeminiBaseURL returns the Gemini API base URL
func (c *AppConfig) GetGeminiBaseURL() string {
	return c.GeminiBaseURL
}

// GetRequestTimeout returns the outbound extraction timeout in seconds
func (c *AppConfig) GetRequestTimeout() int {
	return c.RequestTimeout
}

// GetAllowedOrigins returns the CORS origin allowlist
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		if len(origins) > 0 {
			return origins
		}
	}
	return defaultValue
}
