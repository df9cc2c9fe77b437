// Package client implements the upload-validate-submit-render pipeline that
// drives the extraction gateway from the user's side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"doc-text-extractor/internal/domain"
)

const genericExtractionFailure = "Failed to extract text. Please try again."

// Gateway defines the outbound call the controller makes for one extraction.
type Gateway interface {
	Extract(ctx context.Context, payload *domain.EncodedPayload, fileName string) (string, error)
}

// GatewayClient is the HTTP client for the extraction gateway endpoint.
type GatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGatewayClient creates a new gateway client
func NewGatewayClient(baseURL string, timeout time.Duration) *GatewayClient {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &GatewayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Extract submits one encoded document to the gateway and returns the
// extracted text. The gateway's error body is surfaced when present; a
// generic message is the fallback.
func (c *GatewayClient) Extract(ctx context.Context, payload *domain.EncodedPayload, fileName string) (string, error) {
	reqBody, err := json.Marshal(domain.ExtractRequest{
		Base64Data: payload.Base64Data,
		MimeType:   payload.MimeType,
		FileName:   fileName,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/extract", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if jsonErr := json.Unmarshal(body, &errBody); jsonErr == nil && errBody.Error != "" {
			return "", fmt.Errorf("%s", errBody.Error)
		}
		return "", fmt.Errorf("%s", genericExtractionFailure)
	}

	var result domain.ExtractResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%s", genericExtractionFailure)
	}
	return result.Text, nil
}
