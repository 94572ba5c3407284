package uploads

import "github.com/JaimeStill/image-processing/pkg/openapi"

type spec struct {
	Index   *openapi.Operation
	Upload  *openapi.Operation
	List    *openapi.Operation
	Find    *openapi.Operation
	Content *openapi.Operation
}

var Spec = spec{
	Index: &openapi.Operation{
		Summary:     "Index view",
		Description: "Render the upload form and a paginated table of uploaded files",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseHTML("Index page"),
		},
	},
	Upload: &openapi.Operation{
		Summary: "Upload files",
		Description: "Stream a multipart body. Each file section is validated against the permitted " +
			"extensions, the size limit and its magic-byte signature, then stored under a random name.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file": {Type: "string", Format: "binary", Description: "File to upload, may repeat"},
						},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			201: {Description: "All file sections stored"},
			400: openapi.ResponseRef("Validation"),
			500: openapi.ResponseJSON("Database failure", "Error"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List uploaded files",
		Description: "List uploaded file metadata with pagination",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in file name and note", false),
			openapi.QueryParam("sort", "string", "Sort fields, prefix with - for descending", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Uploaded files", "UploadedFilePageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find uploaded file",
		Description: "Retrieve uploaded file metadata by ID",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Uploaded file UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Uploaded file", "UploadedFile"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Content: &openapi.Operation{
		Summary:     "Download uploaded file",
		Description: "Return the stored bytes as an attachment named after the original file",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Uploaded file UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseBinary("File content", "application/octet-stream"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"UploadedFile": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"file_name":    {Type: "string", Description: "File name as sent by the client"},
				"note":         {Type: "string"},
				"size":         {Type: "integer", Format: "int64", Description: "File size in bytes"},
				"upload_date":  {Type: "string", Format: "date-time"},
				"storage_name": {Type: "string", Description: "Opaque on-disk name"},
			},
		},
		"UploadedFilePageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("UploadedFile")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
