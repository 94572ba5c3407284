// Package images fetches a remote image, crops a source rectangle, scales it to a
// destination size, and re-encodes the result.
package images

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidParameter = errors.New("invalid crop parameter")
	ErrInvalidRegion    = errors.New("invalid crop region")
	ErrFetchFailed      = errors.New("failed to fetch source image")
	ErrDecodeFailed     = errors.New("failed to decode source image")
	ErrEncodeFailed     = errors.New("failed to encode cropped image")
)

// MapHTTPStatus maps crop errors to HTTP status codes. Source and encoding
// failures all surface as 404.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidRegion):
		return http.StatusBadRequest
	case errors.Is(err, ErrFetchFailed):
		return http.StatusNotFound
	case errors.Is(err, ErrDecodeFailed):
		return http.StatusNotFound
	case errors.Is(err, ErrEncodeFailed):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
