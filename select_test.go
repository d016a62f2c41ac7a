package spritebg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fully white frame makes every strategy wipe the whole image. A ratio
// of 1.0 is rejected by every candidate check, so the selector must fall
// back to the raw white/gray result.
func TestSelectBestFullWhiteFallsBack(t *testing.T) {
	sel := SelectBest(uniformImage(64, 64, white))

	require.NotNil(t, sel.Image)
	assert.True(t, sel.Fallback)
	assert.Equal(t, MethodWhiteGray, sel.Method)
	assert.Equal(t, 1.0, sel.Ratio)
	assert.Equal(t, 1.0, TransparencyRatio(sel.Image))
	assert.Len(t, sel.Tried, 3)
}

// Half white, half dark: every strategy lands exactly on 0.5, and the
// tie must deterministically go to the first strategy in run order.
func TestSelectBestTieGoesToFirstStrategy(t *testing.T) {
	src := quadrantImage(10, 10, white, dark, white, dark)

	sel := SelectBest(src)
	require.NotNil(t, sel.Image)
	assert.False(t, sel.Fallback)
	assert.Equal(t, MethodCheckerboard, sel.Method)
	assert.InDelta(t, 0.5, sel.Ratio, 1e-9)
}

func TestSelectBestDeterministic(t *testing.T) {
	src := quadrantImage(10, 10, white, dark, white, dark)

	first := SelectBest(src)
	for i := 0; i < 5; i++ {
		again := SelectBest(src)
		assert.Equal(t, first.Method, again.Method)
		assert.Equal(t, first.Ratio, again.Ratio)
		assert.Equal(t, first.Fallback, again.Fallback)
	}
}

// The winning frame keeps the sprite: dark content must not be eaten by
// selection or the follow-up cleanup pass.
func TestSelectBestKeepsSprite(t *testing.T) {
	src := quadrantImage(10, 10, white, dark, white, dark)

	sel := SelectBest(src)
	require.NotNil(t, sel.Image)
	assert.EqualValues(t, 255, alphaAt(sel.Image, 7, 2))
	assert.EqualValues(t, 0, alphaAt(sel.Image, 2, 2))
}

func TestSelectBestAllDarkFallsBack(t *testing.T) {
	sel := SelectBest(uniformImage(16, 16, dark))

	// Nothing is removable, every ratio is 0.0, outside the band.
	require.NotNil(t, sel.Image)
	assert.True(t, sel.Fallback)
	assert.Equal(t, 0.0, sel.Ratio)
	assert.Equal(t, 0.0, TransparencyRatio(sel.Image))
}
