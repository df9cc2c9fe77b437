// Package service implements the extraction use-cases behind the HTTP layer.
package service

import (
	"context"
	"encoding/base64"

	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"
)

// ExtractionService bridges the wire request to the external model client.
// It holds no state between requests; every call is independent and carries
// its own document payload.
type ExtractionService struct {
	extractor domain.TextExtractor
	config    domain.Config
	logger    domain.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(extractor domain.TextExtractor, config domain.Config, logger domain.Logger) *ExtractionService {
	return &ExtractionService{
		extractor: extractor,
		config:    config,
		logger:    logger,
	}
}

// Extract validates the wire request and relays the document to the external
// model. An empty extracted text is a valid outcome, not an error.
func (s *ExtractionService) Extract(ctx context.Context, req *domain.ExtractRequest) (*domain.ExtractResponse, error) {
	if req == nil || req.Base64Data == "" || req.MimeType == "" {
		return nil, apperrors.NewValidationError(domain.ErrMissingFields.Error())
	}
	if !domain.IsAcceptedMimeType(req.MimeType) {
		return nil, apperrors.NewValidationError(domain.ErrUnsupportedFileType.Error(), req.MimeType)
	}

	// Operator fault, not a user error. The detail stays server-side.
	if s.config.GetGeminiAPIKey() == "" {
		s.logger.Error("Gemini API key not configured", domain.ErrMissingAPIKey)
		return nil, apperrors.NewConfigurationError(domain.ErrMissingAPIKey.Error())
	}

	// Tolerate browser-style data URLs in the payload.
	base64Data := StripDataURLPrefix(req.Base64Data)
	if _, err := base64.StdEncoding.DecodeString(base64Data); err != nil {
		return nil, apperrors.NewValidationError(domain.ErrInvalidBase64.Error())
	}

	s.logger.Info("Forwarding document to extraction model",
		"mime_type", req.MimeType,
		"payload_bytes", len(base64Data),
		"file_name", req.FileName,
	)

	text, err := s.extractor.ExtractText(ctx, base64Data, req.MimeType)
	if err != nil {
		s.logger.Error("Extraction model call failed", err, "mime_type", req.MimeType)
		return nil, apperrors.NewUpstreamError(err.Error(), err)
	}

	return &domain.ExtractResponse{Text: text}, nil
}
