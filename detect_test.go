package spritebg

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCheckerboard(t *testing.T) {
	light := color.NRGBA{230, 230, 230, 255}
	darkTile := color.NRGBA{100, 100, 100, 255}
	img := checkerImage(8, 8, light, darkTile)

	assert.Equal(t, BackgroundCheckerboard, DetectBackgroundType(img))
}

func TestDetectWhiteGray(t *testing.T) {
	img := uniformImage(64, 64, white)

	assert.Equal(t, BackgroundWhiteGray, DetectBackgroundType(img))
}

func TestDetectEdgeFloodFallback(t *testing.T) {
	img := uniformImage(64, 64, dark)

	assert.Equal(t, BackgroundEdgeFlood, DetectBackgroundType(img))
}

func TestDetectMixedCornersPreferWhiteGray(t *testing.T) {
	img := uniformImage(64, 64, white)
	// One dark corner is not enough to drop below the 70% light share.
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			setPixel(img, x, y, dark)
		}
	}

	assert.Equal(t, BackgroundWhiteGray, DetectBackgroundType(img))
}

func TestCheckerboardBlock(t *testing.T) {
	light := color.NRGBA{230, 230, 230, 255}
	darkTile := color.NRGBA{100, 100, 100, 255}

	img := checkerImage(2, 2, light, darkTile)
	assert.True(t, isCheckerboardBlock(toNRGBA(img), 0, 0))

	// Uniform blocks have no cross contrast.
	assert.False(t, isCheckerboardBlock(uniformImage(2, 2, white), 0, 0))
}

func TestCheckerboardPatternNeedsMinimumCorner(t *testing.T) {
	light := color.NRGBA{230, 230, 230, 255}
	darkTile := color.NRGBA{100, 100, 100, 255}
	img := checkerImage(3, 3, light, darkTile)

	assert.False(t, hasCheckerboardPattern(img, img.Rect))
}

func TestBackgroundTypeString(t *testing.T) {
	assert.Equal(t, "checkerboard", BackgroundCheckerboard.String())
	assert.Equal(t, "white_gray", BackgroundWhiteGray.String())
	assert.Equal(t, "edge_flood", BackgroundEdgeFlood.String())
}
