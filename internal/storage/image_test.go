package storage

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	out, err := processImage(bytes.NewReader(encodePNG(t, 800, 600)), ".png")
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestProcessImageDownscalesWideImages(t *testing.T) {
	out, err := processImage(bytes.NewReader(encodePNG(t, 3200, 1600)), ".png")
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 800, h)
}

func TestProcessImageDownscalesTallImages(t *testing.T) {
	out, err := processImage(bytes.NewReader(encodePNG(t, 1000, 4000)), ".png")
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 400, w)
	assert.Equal(t, 1600, h)
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	_, err := processImage(bytes.NewReader([]byte("not an image")), ".png")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNormalizeExt(t *testing.T) {
	assert.Equal(t, ".jpg", normalizeExt("photo.JPEG"))
	assert.Equal(t, ".jpg", normalizeExt("photo.jpg"))
	assert.Equal(t, ".png", normalizeExt("logo.png"))
	assert.Equal(t, "", normalizeExt("doc.pdf"))
}
