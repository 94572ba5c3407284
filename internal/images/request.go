package images

import (
	"fmt"
	"net/url"
	"strconv"
)

// CropRequest selects a source rectangle of the image at URL and the size it is
// scaled to.
type CropRequest struct {
	URL               string `json:"url"`
	SourceX           int    `json:"sourceX"`
	SourceY           int    `json:"sourceY"`
	SourceWidth       int    `json:"sourceWidth"`
	SourceHeight      int    `json:"sourceHeight"`
	DestinationWidth  int    `json:"destinationWidth"`
	DestinationHeight int    `json:"destinationHeight"`
}

// CropRequestFromQuery reads a CropRequest from the Resize query parameters.
// Every parameter is required.
func CropRequestFromQuery(values url.Values) (CropRequest, error) {
	var req CropRequest

	raw := values.Get("url")
	if raw == "" {
		return req, fmt.Errorf("%w: url is required", ErrInvalidParameter)
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return req, fmt.Errorf("%w: url must be an absolute http(s) URL", ErrInvalidParameter)
	}
	req.URL = u.String()

	fields := []struct {
		name string
		dst  *int
	}{
		{"sourceX", &req.SourceX},
		{"sourceY", &req.SourceY},
		{"sourceWidth", &req.SourceWidth},
		{"sourceHeight", &req.SourceHeight},
		{"destinationWidth", &req.DestinationWidth},
		{"destinationHeight", &req.DestinationHeight},
	}

	for _, f := range fields {
		v := values.Get(f.name)
		if v == "" {
			return req, fmt.Errorf("%w: %s is required", ErrInvalidParameter, f.name)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("%w: %s must be an integer", ErrInvalidParameter, f.name)
		}
		*f.dst = n
	}

	return req, nil
}
