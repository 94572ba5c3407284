package uploads

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound    = errors.New("uploaded file not found")
	ErrDuplicate   = errors.New("storage name already exists")
	ErrStoreFailed = errors.New("failed to store uploaded file")
)

// MapHTTPStatus converts domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
