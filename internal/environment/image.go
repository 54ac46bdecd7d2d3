package environment

import (
	"bytes"
	"errors"
	"fmt"
)

// MaxImageSize is the upper bound accepted for workplace photos.
const MaxImageSize = 10 << 20 // 10MB

// ErrInvalidImage is returned when image data is missing, oversized or
// not in a supported raster format.
var ErrInvalidImage = errors.New("invalid image")

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
	gifMagic  = []byte{0x47, 0x49, 0x46, 0x38}
)

// ValidateImage checks that data is a non-empty JPEG, PNG or GIF of at
// most MaxImageSize bytes.
func ValidateImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty data", ErrInvalidImage)
	}
	if len(data) > MaxImageSize {
		return fmt.Errorf("%w: exceeds %d bytes", ErrInvalidImage, MaxImageSize)
	}
	if len(data) < 4 {
		return fmt.Errorf("%w: truncated header", ErrInvalidImage)
	}

	if bytes.HasPrefix(data, jpegMagic) || bytes.HasPrefix(data, pngMagic) || bytes.HasPrefix(data, gifMagic) {
		return nil
	}
	return fmt.Errorf("%w: unrecognized format", ErrInvalidImage)
}
