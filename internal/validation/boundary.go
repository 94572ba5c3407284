package validation

import (
	"fmt"
	"mime"
	"strings"
)

// DefaultBoundaryLengthLimit matches the common multipart reader default.
const DefaultBoundaryLengthLimit = 70

// IsMultipart reports whether contentType names any multipart media type.
func IsMultipart(contentType string) bool {
	return contentType != "" &&
		strings.Contains(strings.ToLower(contentType), "multipart/")
}

// ExtractBoundary returns the unquoted boundary parameter of contentType.
// A missing, blank, or over-long boundary yields ErrMalformedRequest.
func ExtractBoundary(contentType string, lengthLimit int) (string, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	boundary := strings.Trim(params["boundary"], `"`)
	if strings.TrimSpace(boundary) == "" {
		return "", fmt.Errorf("%w: missing content-type boundary", ErrMalformedRequest)
	}

	if len(boundary) > lengthLimit {
		return "", fmt.Errorf("%w: multipart boundary length limit %d exceeded", ErrMalformedRequest, lengthLimit)
	}

	return boundary, nil
}
