package utils

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpenImageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	src := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	src.SetNRGBA(2, 1, color.NRGBA{10, 20, 30, 255})

	require.NoError(t, SaveImage(src, path))
	got, err := OpenImage(path)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Bounds().Dx())
	assert.Equal(t, 3, got.Bounds().Dy())
}

func TestOpenImageMissingFile(t *testing.T) {
	_, err := OpenImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestSaveSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.png")
	palette := []colorful.Color{{R: 1, G: 1, B: 1}, {R: 0.75, G: 0.75, B: 0.75}}

	require.NoError(t, SaveSwatch(palette, 16, path))
	img, err := OpenImage(path)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestSaveSwatchEmptyPalette(t *testing.T) {
	assert.Error(t, SaveSwatch(nil, 16, filepath.Join(t.TempDir(), "swatch.png")))
}

func TestCheckDecodeSupport(t *testing.T) {
	assert.NoError(t, CheckDecodeSupport())
}
