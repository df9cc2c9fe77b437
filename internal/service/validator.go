package service

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"doc-text-extractor/internal/domain"
)

// Validator enforces accepted MIME types and the maximum upload size
// before any network call is made.
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new upload validator
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{maxFileSize: maxFileSize}
}

// ValidateFile checks a selected file against the accepted type set and the
// size ceiling. On success it returns the UploadCandidate; rejected files
// never produce a candidate.
func (v *Validator) ValidateFile(fileName string, data []byte) (*domain.UploadCandidate, error) {
	mimeType := DetectMimeType(fileName, data)
	if !domain.IsAcceptedMimeType(mimeType) {
		return nil, &domain.ValidationError{Field: "mimeType", Message: "unsupported file type"}
	}

	size := int64(len(data))
	if size > v.maxFileSize {
		return nil, &domain.ValidationError{
			Field:   "size",
			Message: fmt.Sprintf("file too large: max %d MB", v.maxFileSize/(1024*1024)),
		}
	}

	return &domain.UploadCandidate{
		FileName: fileName,
		MimeType: mimeType,
		Size:     size,
		Data:     data,
	}, nil
}

// DetectMimeType returns the MIME type for document data, preferring magic
// bytes over the file extension.
func DetectMimeType(fileName string, data []byte) string {
	// PDF magic bytes: %PDF
	if len(data) >= 4 && bytes.Equal(data[:4], []byte("%PDF")) {
		return domain.MimeTypePDF
	}
	// PNG magic bytes
	if len(data) >= 8 && bytes.Equal(data[:4], []byte("\x89PNG")) {
		return domain.MimeTypePNG
	}
	// JPEG magic bytes: FF D8 FF
	if len(data) >= 3 && bytes.Equal(data[:3], []byte{0xFF, 0xD8, 0xFF}) {
		return domain.MimeTypeJPEG
	}
	// WEBP: RIFF....WEBP
	if len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")) {
		return domain.MimeTypeWEBP
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return domain.MimeTypePDF
	case ".jpg", ".jpeg":
		return domain.MimeTypeJPEG
	case ".png":
		return domain.MimeTypePNG
	case ".webp":
		return domain.MimeTypeWEBP
	}
	return ""
}
