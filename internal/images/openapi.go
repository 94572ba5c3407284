package images

import "github.com/JaimeStill/image-processing/pkg/openapi"

type spec struct {
	Resize *openapi.Operation
}

var Spec = spec{
	Resize: &openapi.Operation{
		Summary: "Crop and scale a remote image",
		Description: "Fetch the image at url, crop the source rectangle (clamped to the image bounds) " +
			"and scale it to the destination size with nearest-neighbor sampling.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("url", "string", "Absolute http(s) URL of the source image", true),
			openapi.QueryParam("sourceX", "integer", "Left edge of the source rectangle", true),
			openapi.QueryParam("sourceY", "integer", "Top edge of the source rectangle", true),
			openapi.QueryParam("sourceWidth", "integer", "Width of the source rectangle", true),
			openapi.QueryParam("sourceHeight", "integer", "Height of the source rectangle", true),
			openapi.QueryParam("destinationWidth", "integer", "Output width in pixels", true),
			openapi.QueryParam("destinationHeight", "integer", "Output height in pixels", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseBinary("Cropped image", "image/png", "image/jpeg"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{}
}
