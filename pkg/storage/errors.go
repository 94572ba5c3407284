// Package storage persists opaque-named blobs on the local filesystem.
package storage

import "errors"

var (
	ErrNotFound         = errors.New("storage: key not found")
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidKey covers empty keys, absolute keys, and path traversal attempts.
	ErrInvalidKey = errors.New("storage: invalid key")
)
