package domain

import "time"

// MIME types accepted by the extraction pipeline.
const (
	MimeTypePDF  = "application/pdf"
	MimeTypeJPEG = "image/jpeg"
	MimeTypePNG  = "image/png"
	MimeTypeWEBP = "image/webp"
)

// AcceptedMimeTypes is the closed set of document types the pipeline handles.
var AcceptedMimeTypes = map[string]bool{
	MimeTypePDF:  true,
	MimeTypeJPEG: true,
	MimeTypePNG:  true,
	MimeTypeWEBP: true,
}

// IsAcceptedMimeType reports whether the pipeline accepts the given MIME type.
func IsAcceptedMimeType(mimeType string) bool {
	return AcceptedMimeTypes[mimeType]
}

// UploadCandidate is a validated, not-yet-submitted file awaiting extraction.
type UploadCandidate struct {
	FileName string
	MimeType string
	Size     int64
	Data     []byte
}

// EncodedPayload is the transport-safe encoding of an UploadCandidate.
// It is derived deterministically and consumed by exactly one gateway call.
type EncodedPayload struct {
	Base64Data string
	MimeType   string
}

// ExtractionResult is the successful, immutable outcome of one extraction
// attempt. It is replaced wholesale by the next success or cleared on reset.
type ExtractionResult struct {
	Text      string
	FileName  string
	Timestamp time.Time
}

// ExtractionError is the user-facing record of a failed extraction attempt.
// At any observable point it is mutually exclusive with ExtractionResult.
type ExtractionError struct {
	Message string
}

// ExtractRequest is the JSON body accepted by the extraction endpoint.
// FileName is advisory only and ignored by processing logic.
type ExtractRequest struct {
	Base64Data string `json:"base64Data"`
	MimeType   string `json:"mimeType"`
	FileName   string `json:"fileName,omitempty"`
}

// ExtractResponse is the JSON body returned on a successful extraction.
// An empty Text is a valid, non-error outcome (e.g. a blank page).
type ExtractResponse struct {
	Text string `json:"text"`
}
