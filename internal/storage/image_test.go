package storage

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quimica_commerce/internal/common"
)

// pngImage encodes a solid PNG of the given size.
func pngImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestNormalize_ReencodesAsJPEG(t *testing.T) {
	out, err := Normalize(pngImage(t, 100, 80), DefaultNormalizeOptions())
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestNormalize_BoundsLongestEdge(t *testing.T) {
	opts := NormalizeOptions{MaxDimension: 50, JPEGQuality: 80}

	out, err := Normalize(pngImage(t, 200, 100), opts)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 50, decoded.Bounds().Dx())
	// aspect ratio is preserved
	assert.Equal(t, 25, decoded.Bounds().Dy())
}

func TestNormalize_RejectsNonImage(t *testing.T) {
	_, err := Normalize(strings.NewReader("not an image at all"), DefaultNormalizeOptions())
	require.Error(t, err)

	appErr, ok := err.(*common.Error)
	require.True(t, ok)
	assert.Equal(t, common.StatusBadRequest, appErr.StatusCode)
}
