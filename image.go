package spritebg

import (
	"image"

	"github.com/disintegration/imaging"
)

// toNRGBA returns a mutable NRGBA copy of src with bounds anchored at (0,0).
func toNRGBA(src image.Image) *image.NRGBA {
	return imaging.Clone(src)
}

func pixOffset(stride, x, y int) int {
	return y*stride + x*4
}

// brightness is the plain channel average, 0-255.
func brightness(r, g, b uint8) int {
	return (int(r) + int(g) + int(b)) / 3
}

// channelSpread is the largest pairwise channel difference. Low spread
// means the pixel is close to grayscale.
func channelSpread(r, g, b uint8) int {
	spread := absDiff(r, g)
	if d := absDiff(g, b); d > spread {
		spread = d
	}
	if d := absDiff(r, b); d > spread {
		spread = d
	}
	return spread
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a) - int(b)
	}
	return int(b) - int(a)
}

// clearPixel zeroes all four channels at the given offset.
func clearPixel(pix []uint8, off int) {
	pix[off] = 0
	pix[off+1] = 0
	pix[off+2] = 0
	pix[off+3] = 0
}

// TransparencyRatio returns the fraction of pixels with alpha zero.
func TransparencyRatio(img *image.NRGBA) float64 {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	if w == 0 || h == 0 {
		return 0
	}
	transparent := 0
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] == 0 {
				transparent++
			}
		}
	}
	return float64(transparent) / float64(w*h)
}
