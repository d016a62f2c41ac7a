package spritebg

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloodFillClearsLightBorderRegion(t *testing.T) {
	light := color.NRGBA{250, 250, 250, 255}
	src := uniformImage(7, 7, light)
	// Dark 3×3 sprite in the middle.
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			setPixel(src, x, y, dark)
		}
	}

	out, _, err := Remove(src, MethodEdgeFlood)
	require.NoError(t, err)
	assert.EqualValues(t, 0, alphaAt(out, 0, 0))
	assert.EqualValues(t, 0, alphaAt(out, 6, 6))
	assert.EqualValues(t, 0, alphaAt(out, 1, 3))
	assert.EqualValues(t, 255, alphaAt(out, 3, 3))
}

// A light pixel sealed off from the border by dark pixels must survive:
// the fill only travels through light, similar-colored paths.
func TestFloodFillRespectsWalls(t *testing.T) {
	src := uniformImage(5, 5, dark)
	setPixel(src, 2, 2, color.NRGBA{250, 250, 250, 255})

	out, _, err := Remove(src, MethodEdgeFlood)
	require.NoError(t, err)
	assert.EqualValues(t, 255, alphaAt(out, 2, 2))
	// Walls themselves are never modified.
	assert.Equal(t, dark, out.NRGBAAt(0, 0))
	assert.Equal(t, dark, out.NRGBAAt(1, 2))
}

func TestFloodFillDullBorderDoesNotPropagate(t *testing.T) {
	// Border below the light threshold acts as a wall ring even around a
	// light interior of a different color.
	src := uniformImage(6, 6, color.NRGBA{170, 170, 170, 255})
	setPixel(src, 3, 3, white)

	out, _, err := Remove(src, MethodEdgeFlood)
	require.NoError(t, err)
	assert.Equal(t, 0.0, TransparencyRatio(out))
}

func TestFloodFillOnePixelImage(t *testing.T) {
	out, _, err := Remove(uniformImage(1, 1, white), MethodEdgeFlood)
	require.NoError(t, err)
	assert.EqualValues(t, 0, alphaAt(out, 0, 0))
}
