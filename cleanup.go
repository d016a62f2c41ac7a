package spritebg

import "image"

// CleanupEdges removes light leftovers stranded by background removal: an
// interior pixel surrounded by at least 6 transparent neighbors is cleared
// when its own color is light (all channels > 180). Neighbor counts are
// read from src while writes go to a fresh copy, so the result does not
// depend on scan order. The border ring is never touched.
func CleanupEdges(src *image.NRGBA) *image.NRGBA {
	out := toNRGBA(src)
	w := src.Rect.Dx()
	h := src.Rect.Dy()

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			off := pixOffset(src.Stride, x, y)
			if src.Pix[off+3] == 0 {
				continue
			}

			transparent := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nOff := pixOffset(src.Stride, x+dx, y+dy)
					if src.Pix[nOff+3] == 0 {
						transparent++
					}
				}
			}
			if transparent >= 6 && src.Pix[off] > 180 && src.Pix[off+1] > 180 && src.Pix[off+2] > 180 {
				clearPixel(out.Pix, pixOffset(out.Stride, x, y))
			}
		}
	}
	return out
}
