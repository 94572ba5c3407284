package images

import (
	"context"
	"log/slog"
)

// System crops remote images.
type System interface {
	Crop(ctx context.Context, req CropRequest) (*Result, error)
}

// Result is an encoded cropped image.
type Result struct {
	Data   []byte
	Format ImageFormat
	Width  int
	Height int
}

// Options configures the output of the crop system.
type Options struct {
	MaxDimension int
	Format       ImageFormat
	Quality      int
}

type cropper struct {
	fetcher Fetcher
	opts    Options
	logger  *slog.Logger
}

// New creates a crop System that reads sources through fetcher.
func New(fetcher Fetcher, opts Options, logger *slog.Logger) System {
	if opts.Format == "" {
		opts.Format = JPEG
	}
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}

	return &cropper{
		fetcher: fetcher,
		opts:    opts,
		logger:  logger.With("system", "images"),
	}
}

func (c *cropper) Crop(ctx context.Context, req CropRequest) (*Result, error) {
	data, err := c.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	src, name, err := Decode(data)
	if err != nil {
		return nil, err
	}

	dst, err := Crop(src, req, c.opts.MaxDimension)
	if err != nil {
		return nil, err
	}

	out, err := Encode(dst, c.opts.Format, c.opts.Quality)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("image cropped",
		"url", req.URL,
		"source_format", name,
		"source_size", src.Bounds().Size().String(),
		"width", req.DestinationWidth,
		"height", req.DestinationHeight,
		"bytes", len(out),
	)

	return &Result{
		Data:   out,
		Format: c.opts.Format,
		Width:  req.DestinationWidth,
		Height: req.DestinationHeight,
	}, nil
}
