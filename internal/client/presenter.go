package client

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"doc-text-extractor/internal/domain"

	"github.com/atotto/clipboard"
)

// CountWords returns the number of whitespace-delimited non-empty tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountChars returns the raw character count, whitespace and newlines
// included.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// TranscriptFileName derives the download name for a source file:
// the base name without its extension, suffixed with "_extracted.txt".
func TranscriptFileName(sourceName string) string {
	base := filepath.Base(sourceName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_extracted.txt"
}

// SaveTranscript writes the extracted text verbatim to a file in dir and
// returns the written path. It refuses to run without a result.
func SaveTranscript(result *domain.ExtractionResult, dir string) (string, error) {
	if result == nil {
		return "", domain.ErrNoResult
	}
	path := filepath.Join(dir, TranscriptFileName(result.FileName))
	if err := os.WriteFile(path, []byte(result.Text), 0o644); err != nil {
		return "", fmt.Errorf("save transcript: %w", err)
	}
	return path, nil
}

// CopyToClipboard places the extracted text verbatim on the system
// clipboard. It refuses to run without a result.
func CopyToClipboard(result *domain.ExtractionResult) error {
	if result == nil {
		return domain.ErrNoResult
	}
	return clipboard.WriteAll(result.Text)
}

// Render writes a human-readable view of the result: source file, local
// timestamp, word/character counts and the text itself.
func Render(w io.Writer, result *domain.ExtractionResult) error {
	if result == nil {
		return domain.ErrNoResult
	}
	_, err := fmt.Fprintf(w, "File: %s\nExtracted: %s\nWords: %d  Characters: %d\n\n%s\n",
		result.FileName,
		result.Timestamp.Format("2006-01-02 15:04:05"),
		CountWords(result.Text),
		CountChars(result.Text),
		result.Text,
	)
	return err
}
