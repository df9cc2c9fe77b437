// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"net/http"

	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"
)

// ExtractHandler handles document extraction HTTP requests
type ExtractHandler struct {
	extractionService domain.ExtractionService
	logger            domain.Logger
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(extractionService domain.ExtractionService, logger domain.Logger) *ExtractHandler {
	return &ExtractHandler{
		extractionService: extractionService,
		logger:            logger,
	}
}

// Extract handles POST requests carrying a base64-encoded document and
// responds with the extracted text.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req domain.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMissingFields.Error())
		return
	}

	resp, err := h.extractionService.Extract(r.Context(), &req)
	if err != nil {
		h.logger.Error("Extraction failed", err, "mime_type", req.MimeType)
		writeError(w, apperrors.GetStatusCode(err), errorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// errorMessage returns the user-facing message for an extraction failure.
// AppError messages are already safe to relay; anything else gets a generic
// fallback so internal detail never leaks.
func errorMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Failed to extract text"
}
