package storage

import (
	"context"

	"github.com/JaimeStill/image-processing/pkg/lifecycle"
)

// System stores and retrieves blobs by key relative to a root directory.
type System interface {
	// Store writes data at key, replacing any existing blob. The write lands in a
	// temporary file first and is renamed into place, so a reader never observes a
	// partial blob.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete is idempotent.
	Delete(ctx context.Context, key string) error

	Start(lc *lifecycle.Coordinator) error
}
