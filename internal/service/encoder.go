package service

import (
	"encoding/base64"
	"fmt"
	"strings"

	"doc-text-extractor/internal/domain"
)

// EncodePayload converts a validated candidate into its transport encoding.
// The result is a single-line base64 body with no data-URL prefix.
func EncodePayload(candidate *domain.UploadCandidate) (*domain.EncodedPayload, error) {
	if candidate == nil || len(candidate.Data) == 0 {
		return nil, fmt.Errorf("encode: empty upload candidate")
	}

	dataURL := "data:" + candidate.MimeType + ";base64," +
		base64.StdEncoding.EncodeToString(candidate.Data)

	return &domain.EncodedPayload{
		Base64Data: StripDataURLPrefix(dataURL),
		MimeType:   candidate.MimeType,
	}, nil
}

// StripDataURLPrefix removes a leading "data:<mime>;base64," prefix if
// present. Browser file readers produce data URLs; the gateway and the model
// API both want the bare body.
func StripDataURLPrefix(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if idx := strings.Index(s, ","); idx != -1 {
		return s[idx+1:]
	}
	return s
}
