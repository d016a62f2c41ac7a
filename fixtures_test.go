package spritebg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

func setPixel(m *image.NRGBA, x, y int, c color.NRGBA) {
	m.SetNRGBA(x, y, c)
}

// checkerImage builds a 1-pixel checkerboard of the two colors.
func checkerImage(w, h int, a, b color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				m.SetNRGBA(x, y, a)
			} else {
				m.SetNRGBA(x, y, b)
			}
		}
	}
	return m
}

// quadrantImage splits a w×h canvas into four equal quadrants colored
// clockwise from top-left: tl, tr, bl, br.
func quadrantImage(w, h int, tl, tr, bl, br color.NRGBA) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case x < w/2 && y < h/2:
				m.SetNRGBA(x, y, tl)
			case x >= w/2 && y < h/2:
				m.SetNRGBA(x, y, tr)
			case x < w/2:
				m.SetNRGBA(x, y, bl)
			default:
				m.SetNRGBA(x, y, br)
			}
		}
	}
	return m
}

func alphaAt(m *image.NRGBA, x, y int) uint8 {
	return m.NRGBAAt(x, y).A
}

var (
	white     = color.NRGBA{255, 255, 255, 255}
	black     = color.NRGBA{0, 0, 0, 255}
	dark      = color.NRGBA{50, 50, 50, 255}
	opaqueRed = color.NRGBA{200, 30, 30, 255}
)
