// Package extractor provides the client for the external multimodal model
// that performs the actual document text extraction.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const defaultModel = "gemini-1.5-flash"

// extractionPrompt is the fixed instruction sent with every document.
const extractionPrompt = `Extract all text from this document exactly as it appears.
Preserve the structure and formatting as much as possible (headings, paragraphs, lists, tables).
If the document has multiple pages, extract the text from every page in order.
Return only the extracted text with no commentary.`

// GeminiClient calls the Gemini generateContent API over plain HTTP.
// The credential travels in a request header so it can never appear in a
// URL error string.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a GeminiClient.
type Option func(*GeminiClient)

// WithModel overrides the model identifier.
func WithModel(model string) Option {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *GeminiClient) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *GeminiClient) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewGeminiClient creates a new Gemini API client.
func NewGeminiClient(apiKey string, opts ...Option) *GeminiClient {
	c := &GeminiClient{
		apiKey:  apiKey,
		model:   defaultModel,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // large documents take a while
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ExtractText sends the document to Gemini with the fixed extraction
// instruction and returns the extracted plain text. An empty string is a
// valid result for blank documents.
func (c *GeminiClient) ExtractText(ctx context.Context, base64Data, mimeType string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: extractionPrompt},
					{InlineData: &geminiInlineData{
						MimeType: mimeType,
						Data:     base64Data,
					}},
				},
			},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.1,
			MaxOutputTokens: 8192,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", classifyHTTPError(resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", &UpstreamError{
			Code:    ErrMalformedResponse,
			Message: "failed to decode model response",
			Cause:   err,
		}
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{
			Code:    ErrMalformedResponse,
			Message: "no response from extraction model",
		}
	}

	// Long extractions may come back split across parts.
	var sb strings.Builder
	for _, part := range geminiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
