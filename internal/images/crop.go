package images

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Crop scales the part of src selected by req into a new canvas of the
// destination size using nearest-neighbor sampling.
//
// The source rectangle is intersected with the image bounds before scaling. An
// empty intersection, a non-positive size, or a destination dimension above
// maxDimension yields ErrInvalidRegion.
func Crop(src image.Image, req CropRequest, maxDimension int) (*image.RGBA, error) {
	if req.SourceWidth <= 0 || req.SourceHeight <= 0 {
		return nil, fmt.Errorf("%w: source size must be positive", ErrInvalidRegion)
	}
	if req.DestinationWidth <= 0 || req.DestinationHeight <= 0 {
		return nil, fmt.Errorf("%w: destination size must be positive", ErrInvalidRegion)
	}
	if maxDimension > 0 && (req.DestinationWidth > maxDimension || req.DestinationHeight > maxDimension) {
		return nil, fmt.Errorf("%w: destination exceeds %d pixels", ErrInvalidRegion, maxDimension)
	}

	bounds := src.Bounds()
	x0, x1, okX := span(req.SourceX, req.SourceWidth, bounds.Dx())
	y0, y1, okY := span(req.SourceY, req.SourceHeight, bounds.Dy())
	if !okX || !okY {
		return nil, fmt.Errorf("%w: source rectangle lies outside the image", ErrInvalidRegion)
	}

	region := image.Rect(x0, y0, x1, y1).Add(bounds.Min)

	dst := image.NewRGBA(image.Rect(0, 0, req.DestinationWidth, req.DestinationHeight))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, region, draw.Src, nil)

	return dst, nil
}

// span clips [offset, offset+length) to [0, size) along one axis without
// computing a sum that can overflow int.
func span(offset, length, size int) (lo, hi int, ok bool) {
	if offset >= size {
		return 0, 0, false
	}

	var end int
	if offset < 0 {
		end = offset + length
	} else {
		end = offset + min(length, size-offset)
	}

	lo = max(offset, 0)
	hi = min(end, size)
	return lo, hi, hi > lo
}
