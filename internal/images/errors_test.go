package images_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/image-processing/internal/images"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid parameter", images.ErrInvalidParameter, http.StatusBadRequest},
		{"wrapped invalid region", fmt.Errorf("crop: %w", images.ErrInvalidRegion), http.StatusBadRequest},
		{"fetch failed", images.ErrFetchFailed, http.StatusNotFound},
		{"wrapped decode failed", fmt.Errorf("decode: %w", images.ErrDecodeFailed), http.StatusNotFound},
		{"encode failed", images.ErrEncodeFailed, http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := images.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
