package uploads

import (
	"github.com/JaimeStill/image-processing/pkg/query"
	"github.com/JaimeStill/image-processing/pkg/repository"
)

var projection = query.NewProjectionMap("public", "uploaded_files", "f").
	Project("id", "Id").
	Project("file_name", "FileName").
	Project("note", "Note").
	Project("size", "Size").
	Project("upload_date", "UploadDate").
	Project("storage_name", "StorageName")

var defaultSort = query.SortField{Field: "UploadDate", Descending: true}

func scanFile(s repository.Scanner) (File, error) {
	var f File
	err := s.Scan(
		&f.ID,
		&f.FileName,
		&f.Note,
		&f.Size,
		&f.UploadDate,
		&f.StorageName,
	)
	return f, err
}
