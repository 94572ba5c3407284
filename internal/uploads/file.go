// Package uploads ingests validated multipart file sections. Each accepted section is
// written to blob storage under an opaque name and recorded in the uploaded_files table.
package uploads

import (
	"time"

	"github.com/google/uuid"
)

// File is an uploaded file record. Content is populated only by Create and Content;
// list and find queries never load it.
type File struct {
	ID          uuid.UUID `json:"id"`
	Content     []byte    `json:"-"`
	FileName    string    `json:"file_name"`
	Note        string    `json:"note"`
	Size        int64     `json:"size"`
	UploadDate  time.Time `json:"upload_date"`
	StorageName string    `json:"storage_name"`
}

// CreateCommand contains the data required to persist one validated section.
// FileName is the client's name as sent. It is escaped where it is rendered.
type CreateCommand struct {
	FileName    string
	Note        string
	StorageName string
	Content     []byte
}
