package uploads

import (
	"context"

	"github.com/JaimeStill/image-processing/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the uploaded file operations.
// Implementations write the blob before inserting its record.
type System interface {
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[File], error)
	Find(ctx context.Context, id uuid.UUID) (*File, error)
	Create(ctx context.Context, cmd CreateCommand) (*File, error)

	// Content returns the record with Content loaded from blob storage.
	Content(ctx context.Context, id uuid.UUID) (*File, error)
}
