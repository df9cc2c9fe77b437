package client

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"doc-text-extractor/internal/domain"
)

func TestCountWords(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"two words with newline", "Hello\nWorld", 2},
		{"empty", "", 0},
		{"whitespace only", "  \n\t  ", 0},
		{"multiple spaces", "one   two    three", 3},
		{"leading and trailing", "  padded words  ", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountWords(tc.text); got != tc.want {
				t.Fatalf("expected %d words, got %d", tc.want, got)
			}
		})
	}
}

func TestCountChars(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"includes newline", "Hello\nWorld", 11},
		{"empty", "", 0},
		{"whitespace counted", "a b\n", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountChars(tc.text); got != tc.want {
				t.Fatalf("expected %d characters, got %d", tc.want, got)
			}
		})
	}
}

func TestTranscriptFileName(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   string
	}{
		{"pdf", "report.pdf", "report_extracted.txt"},
		{"jpeg", "scan.jpeg", "scan_extracted.txt"},
		{"no extension", "README", "README_extracted.txt"},
		{"dotted name", "v1.2-notes.png", "v1.2-notes_extracted.txt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TranscriptFileName(tc.source); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestSaveTranscript_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	result := &domain.ExtractionResult{
		Text:      "Hello\nWorld",
		FileName:  "doc.pdf",
		Timestamp: time.Now(),
	}

	path, err := SaveTranscript(result, dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if filepath.Base(path) != "doc_extracted.txt" {
		t.Fatalf("unexpected transcript name: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read transcript: %v", err)
	}
	if string(content) != "Hello\nWorld" {
		t.Fatalf("expected verbatim text including newline, got %q", string(content))
	}
}

func TestSaveTranscript_NoResult(t *testing.T) {
	if _, err := SaveTranscript(nil, t.TempDir()); err != domain.ErrNoResult {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}

func TestCopyToClipboard_NoResult(t *testing.T) {
	if err := CopyToClipboard(nil); err != domain.ErrNoResult {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	result := &domain.ExtractionResult{
		Text:      "Hello\nWorld",
		FileName:  "doc.pdf",
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := Render(&buf, result); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "File: doc.pdf") {
		t.Fatalf("expected file name in output, got %s", out)
	}
	if !strings.Contains(out, "Words: 2  Characters: 11") {
		t.Fatalf("expected metrics in output, got %s", out)
	}
	if !strings.Contains(out, "Hello\nWorld") {
		t.Fatalf("expected verbatim text in output, got %s", out)
	}
}

func TestRender_NoResult(t *testing.T) {
	if err := Render(&bytes.Buffer{}, nil); err != domain.ErrNoResult {
		t.Fatalf("expected ErrNoResult, got %v", err)
	}
}
