package domain

import "errors"

// Domain errors
var (
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrMissingFields        = errors.New("base64Data and mimeType are required")
	ErrMissingAPIKey        = errors.New("Missing GEMINI_API_KEY configuration")
	ErrNoFileSelected       = errors.New("no file selected")
	ErrExtractionInProgress = errors.New("extraction already in progress")
	ErrNoResult             = errors.New("no extraction result available")
	ErrInvalidBase64        = errors.New("invalid base64 payload")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
