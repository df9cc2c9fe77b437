package domain

import "context"

// TextExtractor defines the client interface for the external multimodal
// model that performs the actual text extraction.
type TextExtractor interface {
	ExtractText(ctx context.Context, base64Data, mimeType string) (string, error)
}

// ExtractionService defines the gateway-side use-case operations.
type ExtractionService interface {
	Extract(ctx context.Context, req *ExtractRequest) (*ExtractResponse, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetGeminiBaseURL() string
	GetRequestTimeout() int
	GetAllowedOrigins() []string
}
