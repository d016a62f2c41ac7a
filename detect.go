package spritebg

import "image"

// BackgroundType classifies what kind of backdrop an image carries.
type BackgroundType int

const (
	// BackgroundCheckerboard is the alternating light/dark tiling editors
	// draw for transparency.
	BackgroundCheckerboard BackgroundType = iota
	// BackgroundWhiteGray is a mostly uniform white or light gray fill.
	BackgroundWhiteGray
	// BackgroundEdgeFlood is the fallback when neither pattern shows up in
	// the corners; removal then flood-fills from the borders.
	BackgroundEdgeFlood
)

func (t BackgroundType) String() string {
	switch t {
	case BackgroundCheckerboard:
		return "checkerboard"
	case BackgroundWhiteGray:
		return "white_gray"
	default:
		return "edge_flood"
	}
}

// DetectBackgroundType votes among the three backdrop kinds by sampling
// the four 10×10 (image-bounded) corners. Two or more checkerboard corners
// win outright; otherwise a 70% light-pixel share means white/gray; the
// flood fallback needs no further evidence.
func DetectBackgroundType(src image.Image) BackgroundType {
	return detectBackgroundType(toNRGBA(src))
}

func detectBackgroundType(img *image.NRGBA) BackgroundType {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	size := min(10, w, h)
	if size < 1 {
		return BackgroundEdgeFlood
	}
	corners := [4]image.Rectangle{
		image.Rect(0, 0, size, size),
		image.Rect(w-size, 0, w, size),
		image.Rect(0, h-size, size, h),
		image.Rect(w-size, h-size, w, h),
	}

	checkerScore := 0
	for _, c := range corners {
		if hasCheckerboardPattern(img, c) {
			checkerScore++
		}
	}
	if checkerScore >= 2 {
		return BackgroundCheckerboard
	}

	light := 0
	total := 0
	for _, c := range corners {
		for y := c.Min.Y; y < c.Max.Y; y++ {
			row := y * img.Stride
			for x := c.Min.X; x < c.Max.X; x++ {
				off := row + x*4
				if img.Pix[off] > 200 && img.Pix[off+1] > 200 && img.Pix[off+2] > 200 {
					light++
				}
				total++
			}
		}
	}
	if total > 0 && float64(light)/float64(total) > 0.7 {
		return BackgroundWhiteGray
	}
	return BackgroundEdgeFlood
}

// hasCheckerboardPattern reports whether more than half of the 2×2 blocks
// inside rect look like checkerboard tiles.
func hasCheckerboardPattern(img *image.NRGBA, rect image.Rectangle) bool {
	if rect.Dx() < 4 || rect.Dy() < 4 {
		return false
	}
	matching := 0
	total := 0
	for y := rect.Min.Y; y < rect.Max.Y-1; y += 2 {
		for x := rect.Min.X; x < rect.Max.X-1; x += 2 {
			if isCheckerboardBlock(img, x, y) {
				matching++
			}
			total++
		}
	}
	return total > 0 && float64(matching)/float64(total) > 0.5
}

// isCheckerboardBlock tests the 2×2 block at (x,y): both diagonal pairs
// close in brightness, adjacent pixels far apart.
func isCheckerboardBlock(img *image.NRGBA, x, y int) bool {
	b00 := brightnessAt(img, x, y)
	b01 := brightnessAt(img, x+1, y)
	b10 := brightnessAt(img, x, y+1)
	b11 := brightnessAt(img, x+1, y+1)

	diag1 := abs(b00 - b11)
	diag2 := abs(b01 - b10)
	cross := abs(b00 - b01)
	return diag1 < 30 && diag2 < 30 && cross > 50
}

func brightnessAt(img *image.NRGBA, x, y int) int {
	off := pixOffset(img.Stride, x, y)
	return brightness(img.Pix[off], img.Pix[off+1], img.Pix[off+2])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
