package domain

import "testing"

func TestIsAcceptedMimeType(t *testing.T) {
	accepted := []string{MimeTypePDF, MimeTypeJPEG, MimeTypePNG, MimeTypeWEBP}
	for _, mt := range accepted {
		if !IsAcceptedMimeType(mt) {
			t.Fatalf("expected %s to be accepted", mt)
		}
	}

	rejected := []string{"", "text/plain", "image/gif", "application/zip", "image/svg+xml"}
	for _, mt := range rejected {
		if IsAcceptedMimeType(mt) {
			t.Fatalf("expected %s to be rejected", mt)
		}
	}
}

func TestValidationError_Error(t *testing.T) {
	withField := &ValidationError{Field: "size", Message: "file too large: max 3 MB"}
	if withField.Error() != "size: file too large: max 3 MB" {
		t.Fatalf("unexpected error string: %s", withField.Error())
	}

	withoutField := &ValidationError{Message: "unsupported file type"}
	if withoutField.Error() != "unsupported file type" {
		t.Fatalf("unexpected error string: %s", withoutField.Error())
	}
}
