package storage

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"

	"quimica_commerce/internal/common"
)

// NormalizeOptions bounds the re-encode step.
type NormalizeOptions struct {
	MaxDimension int // longest edge after resize
	JPEGQuality  int
}

// DefaultNormalizeOptions matches the configured upload defaults.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		MaxDimension: 1600,
		JPEGQuality:  80,
	}
}

// Normalize decodes an uploaded image, applies EXIF orientation, bounds it to
// the max dimension and re-encodes as JPEG. Every upload goes through this,
// whatever format the client sent.
func Normalize(r io.Reader, opts NormalizeOptions) ([]byte, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"File is not a valid image",
			common.StatusBadRequest,
			err,
		)
	}

	bounds := img.Bounds()
	if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
		img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(opts.JPEGQuality)); err != nil {
		return nil, common.NewError(
			common.ErrCodeInternalServer,
			"Failed to encode image",
			common.StatusInternalServerError,
			err,
		)
	}

	return buf.Bytes(), nil
}
