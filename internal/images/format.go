package images

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	// Decoders for image.Decode beyond the encoders imported above.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageFormat is an output encoding for cropped images.
type ImageFormat string

const (
	JPEG ImageFormat = "jpeg"
	PNG  ImageFormat = "png"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

// ParseImageFormat accepts png, jpeg, or jpg in any case.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	default:
		return "", fmt.Errorf("%w: format must be 'png' or 'jpeg'", ErrInvalidParameter)
	}
}

// ContentType returns the MIME type of the encoding.
func (f ImageFormat) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/jpeg"
}

// Encode writes img in format f. quality applies to JPEG only.
func Encode(img image.Image, f ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch f {
	case PNG:
		err = png.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	default:
		err = fmt.Errorf("unsupported format %q", f)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	return buf.Bytes(), nil
}

// Decode reads any registered format: gif, jpeg, png, bmp, or webp.
func Decode(data []byte) (image.Image, string, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	return img, name, nil
}
