package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/image-processing/internal/validation"
)

func TestIsMultipart(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        bool
	}{
		{"form-data", "multipart/form-data; boundary=abc", true},
		{"mixed", "multipart/mixed", true},
		{"upper case", "MULTIPART/FORM-DATA; boundary=abc", true},
		{"json", "application/json", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validation.IsMultipart(tt.contentType); got != tt.want {
				t.Errorf("IsMultipart(%q) = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestExtractBoundary(t *testing.T) {
	limit := validation.DefaultBoundaryLengthLimit

	tests := []struct {
		name        string
		contentType string
		want        string
		wantErr     bool
	}{
		{"plain", "multipart/form-data; boundary=abc123", "abc123", false},
		{"quoted", `multipart/form-data; boundary="abc 123"`, "abc 123", false},
		{"at limit", "multipart/form-data; boundary=" + strings.Repeat("a", limit), strings.Repeat("a", limit), false},
		{"over limit", "multipart/form-data; boundary=" + strings.Repeat("a", limit+1), "", true},
		{"missing", "multipart/form-data", "", true},
		{"blank", `multipart/form-data; boundary="  "`, "", true},
		{"unparseable", "multipart/form-data; boundary", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ExtractBoundary(tt.contentType, limit)
			if tt.wantErr {
				if !errors.Is(err, validation.ErrMalformedRequest) {
					t.Errorf("ExtractBoundary() error = %v, want %v", err, validation.ErrMalformedRequest)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBoundary() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractBoundary() = %q, want %q", got, tt.want)
			}
		})
	}
}
