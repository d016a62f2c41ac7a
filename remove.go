package spritebg

import (
	"fmt"
	"image"
)

// WhiteGrayTolerance is the channel-spread ceiling under which a bright
// pixel counts as white/gray backdrop.
const WhiteGrayTolerance = 40

// Method selects a background removal strategy.
type Method int

const (
	// MethodAuto runs the backdrop detector and dispatches to its pick.
	MethodAuto Method = iota
	MethodCheckerboard
	MethodWhiteGray
	MethodEdgeFlood
)

func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodCheckerboard:
		return "checkerboard"
	case MethodWhiteGray:
		return "white_gray"
	case MethodEdgeFlood:
		return "edge_flood"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps the CLI method names onto Method values.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "auto":
		return MethodAuto, nil
	case "checkerboard":
		return MethodCheckerboard, nil
	case "white_gray":
		return MethodWhiteGray, nil
	case "edge_flood":
		return MethodEdgeFlood, nil
	default:
		return MethodAuto, fmt.Errorf("unknown removal method %q", s)
	}
}

// methodFor maps a detected backdrop kind to its removal strategy.
func methodFor(t BackgroundType) Method {
	switch t {
	case BackgroundCheckerboard:
		return MethodCheckerboard
	case BackgroundWhiteGray:
		return MethodWhiteGray
	default:
		return MethodEdgeFlood
	}
}

// Remove clears the backdrop of src with the given strategy and returns
// the cleaned copy together with the strategy that actually ran (relevant
// for MethodAuto). Source dimensions are preserved; src is not modified.
func Remove(src image.Image, method Method) (*image.NRGBA, Method, error) {
	dst := toNRGBA(src)
	if method == MethodAuto {
		method = methodFor(detectBackgroundType(dst))
	}
	switch method {
	case MethodCheckerboard:
		removeCheckerboard(dst)
	case MethodWhiteGray:
		removeWhiteGray(dst, WhiteGrayTolerance)
	case MethodEdgeFlood:
		floodFill(dst)
	default:
		return nil, method, fmt.Errorf("unknown removal method %q", method)
	}
	return dst, method, nil
}

// removeCheckerboard clears every 2×2-aligned block passing the
// checkerboard block test, plus any very light pixel (all channels > 220)
// that the block test misses, e.g. tile highlights.
func removeCheckerboard(m *image.NRGBA) {
	w := m.Rect.Dx()
	h := m.Rect.Dy()
	mask := make([]bool, w*h)

	for y := 0; y < h-1; y += 2 {
		for x := 0; x < w-1; x += 2 {
			if isCheckerboardBlock(m, x, y) {
				mask[y*w+x] = true
				mask[y*w+x+1] = true
				mask[(y+1)*w+x] = true
				mask[(y+1)*w+x+1] = true
			}
		}
	}
	for y := 0; y < h; y++ {
		row := y * m.Stride
		for x := 0; x < w; x++ {
			off := row + x*4
			if m.Pix[off] > 220 && m.Pix[off+1] > 220 && m.Pix[off+2] > 220 {
				mask[y*w+x] = true
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				clearPixel(m.Pix, pixOffset(m.Stride, x, y))
			}
		}
	}
}

// removeWhiteGray clears bright, near-grayscale pixels. Pure per-pixel
// threshold, no neighbor dependency.
func removeWhiteGray(m *image.NRGBA, tolerance int) {
	w := m.Rect.Dx()
	h := m.Rect.Dy()
	for y := 0; y < h; y++ {
		row := y * m.Stride
		for x := 0; x < w; x++ {
			off := row + x*4
			r, g, b := m.Pix[off], m.Pix[off+1], m.Pix[off+2]
			if channelSpread(r, g, b) < tolerance && brightness(r, g, b) > 180 {
				clearPixel(m.Pix, off)
			}
		}
	}
}
