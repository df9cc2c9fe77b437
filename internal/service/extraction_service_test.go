package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"doc-text-extractor/internal/domain"
	apperrors "doc-text-extractor/pkg/errors"
)

// Mock implementations for testing
type MockTextExtractor struct {
	text  string
	err   error
	calls int
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, base64Data, mimeType string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

type MockConfig struct {
	apiKey      string
	maxFileSize int64
}

func (m *MockConfig) GetServerPort() string       { return "8080" }
func (m *MockConfig) GetMaxFileSize() int64       { return m.maxFileSize }
func (m *MockConfig) GetLogLevel() string         { return "error" }
func (m *MockConfig) GetGeminiAPIKey() string     { return m.apiKey }
func (m *MockConfig) GetGeminiModel() string      { return "gemini-1.5-flash" }
func (m *MockConfig) GetGeminiBaseURL() string    { return "http://localhost" }
func (m *MockConfig) GetRequestTimeout() int      { return 5 }
func (m *MockConfig) GetAllowedOrigins() []string { return nil }

type MockServiceLogger struct{}

func (l *MockServiceLogger) Info(msg string, fields ...interface{})             {}
func (l *MockServiceLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockServiceLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockServiceLogger) Warn(msg string, fields ...interface{})             {}

func validBase64() string {
	return base64.StdEncoding.EncodeToString([]byte("%PDF-1.7 test document"))
}

func newTestService(extractor *MockTextExtractor, apiKey string) *ExtractionService {
	return NewExtractionService(extractor, &MockConfig{apiKey: apiKey, maxFileSize: testMaxFileSize}, &MockServiceLogger{})
}

func TestExtract_Success(t *testing.T) {
	extractor := &MockTextExtractor{text: "Hello\nWorld"}
	svc := newTestService(extractor, "test-key")

	resp, err := svc.Extract(context.Background(), &domain.ExtractRequest{
		Base64Data: validBase64(),
		MimeType:   domain.MimeTypePDF,
		FileName:   "doc.pdf",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Text != "Hello\nWorld" {
		t.Fatalf("expected text %q, got %q", "Hello\nWorld", resp.Text)
	}
	if extractor.calls != 1 {
		t.Fatalf("expected 1 extractor call, got %d", extractor.calls)
	}
}

func TestExtract_EmptyTextIsValid(t *testing.T) {
	svc := newTestService(&MockTextExtractor{text: ""}, "test-key")

	resp, err := svc.Extract(context.Background(), &domain.ExtractRequest{
		Base64Data: validBase64(),
		MimeType:   domain.MimeTypePNG,
	})
	if err != nil {
		t.Fatalf("expected blank page to be a valid outcome, got %v", err)
	}
	if resp.Text != "" {
		t.Fatalf("expected empty text, got %q", resp.Text)
	}
}

func TestExtract_MissingFields(t *testing.T) {
	extractor := &MockTextExtractor{}
	svc := newTestService(extractor, "test-key")

	cases := []struct {
		name string
		req  *domain.ExtractRequest
	}{
		{"nil request", nil},
		{"missing base64Data", &domain.ExtractRequest{MimeType: domain.MimeTypePDF}},
		{"missing mimeType", &domain.ExtractRequest{Base64Data: validBase64()}},
		{"both missing", &domain.ExtractRequest{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Extract(context.Background(), tc.req)
			if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if apperrors.GetStatusCode(err) != 400 {
				t.Fatalf("expected status 400, got %d", apperrors.GetStatusCode(err))
			}
		})
	}
	if extractor.calls != 0 {
		t.Fatalf("expected no extractor calls, got %d", extractor.calls)
	}
}

func TestExtract_UnsupportedMimeType(t *testing.T) {
	svc := newTestService(&MockTextExtractor{}, "test-key")

	_, err := svc.Extract(context.Background(), &domain.ExtractRequest{
		Base64Data: validBase64(),
		MimeType:   "text/plain",
	})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExtract_MissingAPIKey(t *testing.T) {
	extractor := &MockTextExtractor{}
	svc := newTestService(extractor, "")

	_, err := svc.Extract(context.Background(), &domain.ExtractRequest{
		Base64Data: validBase64(),
		MimeType:   domain.MimeTypePDF,
	})
	if !apperrors.IsType(err, apperrors.ErrorTypeConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if apperrors.GetStatusCode(err) != 500 {
		t.Fatalf("expected status 500, got %d", apperrors.GetStatusCode(err))
	}
	if extractor.calls != 0 {
		t.Fatalf("expected no extractor calls without credential, got %d", extractor.calls)
	}
}

func TestExtract_InvalidBase64(t *testing.T) {
	svc := newTestService(&MockTextExtractor{}, "test-key")

	_, err := svc.Extract(context.Background(), &domain.ExtractRequest{
		Base64Data: "!!!not-base64!!!",
		MimeType:   domain.MimeTypePDF,
	})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExtract_DataURLPrefixTolerated(t *testing.T) {
	svc := newTestService(&MockTextExtractor{text: "ok"}, "test-key")

	resp, err := svc.Extract(context.Background(), &domain.ExtractRequest{
		Base64Data: "data:application/pdf;base64," + validBase64(),
		MimeType:   domain.MimeTypePDF,
	})
	if err != nil {
		t.Fatalf("expected data-URL payload to be accepted, got %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("expected text ok, got %q", resp.Text)
	}
}

func TestExtract_UpstreamFailure(t *testing.T) {
	svc := newTestService(&MockTextExtractor{err: errors.New("model timed out")}, "test-key")

	_, err := svc.Extract(context.Background(), &domain.ExtractRequest{
		Base64Data: validBase64(),
		MimeType:   domain.MimeTypePDF,
	})
	if !apperrors.IsType(err, apperrors.ErrorTypeUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if apperrors.GetStatusCode(err) != 500 {
		t.Fatalf("expected status 500, got %d", apperrors.GetStatusCode(err))
	}
}
