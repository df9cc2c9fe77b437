package extractor

import (
	"fmt"
	"net/http"
)

// UpstreamErrorCode represents specific extraction model failure types.
type UpstreamErrorCode string

const (
	ErrModelUnavailable  UpstreamErrorCode = "MODEL_UNAVAILABLE"
	ErrModelRateLimited  UpstreamErrorCode = "MODEL_RATE_LIMITED"
	ErrMalformedResponse UpstreamErrorCode = "MALFORMED_RESPONSE"
)

// UpstreamError is a structured error for external model failures.
// Retryable is recorded for the caller's information; the pipeline itself
// never retries automatically.
type UpstreamError struct {
	Code      UpstreamErrorCode
	Message   string
	Retryable bool
	Cause     error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// classifyNetworkError converts transport failures to UpstreamErrors.
func classifyNetworkError(err error) *UpstreamError {
	return &UpstreamError{
		Code:      ErrModelUnavailable,
		Message:   "extraction model request failed",
		Retryable: true,
		Cause:     err,
	}
}

// classifyHTTPError converts non-200 model responses to UpstreamErrors.
func classifyHTTPError(statusCode int, body string) *UpstreamError {
	if statusCode == http.StatusTooManyRequests {
		return &UpstreamError{
			Code:      ErrModelRateLimited,
			Message:   "extraction model rate limited",
			Retryable: true,
		}
	}
	return &UpstreamError{
		Code:      ErrModelUnavailable,
		Message:   fmt.Sprintf("extraction model error (HTTP %d): %s", statusCode, body),
		Retryable: statusCode >= 500,
	}
}
