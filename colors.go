package spritebg

import (
	"image"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// DefaultTolerance is the per-channel distance under which a pixel is
// considered to match a known background color.
const DefaultTolerance = 25

// RGB is a quantized background color triple.
type RGB struct {
	R, G, B uint8
}

// BackgroundColors is the set of detected background hues for one image.
// It is derived once and read-only during classification.
type BackgroundColors []RGB

type AnalyzeMethod int

const (
	AnalyzeFrequency AnalyzeMethod = iota
	AnalyzeKMeans
)

func (m AnalyzeMethod) String() string {
	switch m {
	case AnalyzeKMeans:
		return "kmeans"
	default:
		return "frequency"
	}
}

// Colorful converts the set for palette rendering and sorting.
func (bg BackgroundColors) Colorful() []colorful.Color {
	out := make([]colorful.Color, len(bg))
	for i, c := range bg {
		out[i] = colorful.Color{
			R: float64(c.R) / 255.0,
			G: float64(c.G) / 255.0,
			B: float64(c.B) / 255.0,
		}
	}
	return out
}

// defaultBackgroundColors covers plain white plus the two grays used by
// editor transparency checkerboards.
func defaultBackgroundColors() BackgroundColors {
	return BackgroundColors{
		{255, 255, 255},
		{192, 192, 192},
		{224, 224, 224},
	}
}

// AnalyzeBackgroundColors samples the four image corners and returns the
// dominant light colors found there, quantized to a 16-step grid. When no
// light color stands out it falls back to the dominant corner color, then
// to the fixed white/gray defaults.
func AnalyzeBackgroundColors(src image.Image, method AnalyzeMethod) BackgroundColors {
	return analyzeBackgroundColors(toNRGBA(src), method)
}

func analyzeBackgroundColors(img *image.NRGBA, method AnalyzeMethod) BackgroundColors {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	sampleSize := min(20, w/4, h/4)
	if sampleSize < 1 {
		return defaultBackgroundColors()
	}
	samples := cornerSamples(img, sampleSize)
	if len(samples) == 0 {
		return defaultBackgroundColors()
	}

	var bg BackgroundColors
	switch method {
	case AnalyzeKMeans:
		bg = clusterColors(samples)
	default:
		bg = frequentColors(samples)
	}

	if len(bg) == 0 {
		if c, ok := dominantCornerColor(samples); ok {
			bg = BackgroundColors{c}
		}
	}
	if len(bg) == 0 {
		return defaultBackgroundColors()
	}
	sortByLuminance(bg)
	return bg
}

// cornerSamples collects the pixels of the four size×size corner windows.
func cornerSamples(img *image.NRGBA, size int) []RGB {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	out := make([]RGB, 0, 4*size*size)
	corners := [4][2]int{
		{0, 0},
		{w - size, 0},
		{0, h - size},
		{w - size, h - size},
	}
	for _, c := range corners {
		for y := c[1]; y < c[1]+size; y++ {
			row := y * img.Stride
			for x := c[0]; x < c[0]+size; x++ {
				off := row + x*4
				out = append(out, RGB{img.Pix[off], img.Pix[off+1], img.Pix[off+2]})
			}
		}
	}
	return out
}

func quantize(c RGB) RGB {
	return RGB{c.R / 16 * 16, c.G / 16 * 16, c.B / 16 * 16}
}

func isLight(c RGB) bool {
	return c.R > 150 && c.G > 150 && c.B > 150
}

// frequentColors keeps every quantized light color covering more than 10%
// of the corner samples.
func frequentColors(samples []RGB) BackgroundColors {
	counts := make(map[RGB]int, 64)
	for _, s := range samples {
		counts[quantize(s)]++
	}
	var bg BackgroundColors
	total := len(samples)
	for c, n := range counts {
		if float64(n)/float64(total) > 0.1 && isLight(c) {
			bg = append(bg, c)
		}
	}
	return bg
}

// clusterColors derives the set by k-means clustering the corner samples
// instead of fixed-grid bucket counting. Cluster centers standing for more
// than 10% of the samples and bright enough to be backdrop are kept.
func clusterColors(samples []RGB) BackgroundColors {
	dataset := make(clusters.Observations, 0, len(samples))
	for _, s := range samples {
		dataset = append(dataset, clusters.Coordinates{
			float64(s.R) / 255.0,
			float64(s.G) / 255.0,
			float64(s.B) / 255.0,
		})
	}
	k := min(4, len(dataset))
	if k < 1 {
		return nil
	}
	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		return nil
	}

	var bg BackgroundColors
	total := len(samples)
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		share := float64(len(c.Observations)) / float64(total)
		col := quantize(RGB{
			clampChannel(c.Center[0] * 255),
			clampChannel(c.Center[1] * 255),
			clampChannel(c.Center[2] * 255),
		})
		if share > 0.1 && isLight(col) {
			bg = append(bg, col)
		}
	}
	return bg
}

// dominantCornerColor asks dominantcolor for the strongest corner hue and
// accepts it only when it is light enough to plausibly be backdrop.
func dominantCornerColor(samples []RGB) (RGB, bool) {
	strip := image.NewNRGBA(image.Rect(0, 0, len(samples), 1))
	for i, s := range samples {
		off := i * 4
		strip.Pix[off] = s.R
		strip.Pix[off+1] = s.G
		strip.Pix[off+2] = s.B
		strip.Pix[off+3] = 255
	}
	d := dominantcolor.Find(strip)
	c := quantize(RGB{d.R, d.G, d.B})
	if !isLight(c) {
		return RGB{}, false
	}
	return c, true
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func sortByLuminance(bg BackgroundColors) {
	slices.SortFunc(bg, func(a, b RGB) int {
		ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
		cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
		la, _, _ := ca.Luv()
		lb, _, _ := cb.Luv()
		if la < lb {
			return -1
		}
		if la > lb {
			return 1
		}
		return 0
	})
}

// IsBackground reports whether a pixel belongs to the removable backdrop.
// Rules, first match wins:
//  1. within tolerance of a known background color on every channel
//  2. near-white and near-grayscale
//  3. generally bright (average > 180); deliberately over-inclusive
func IsBackground(r, g, b uint8, bg BackgroundColors, tolerance int) bool {
	for _, c := range bg {
		if absDiff(r, c.R) < tolerance && absDiff(g, c.G) < tolerance && absDiff(b, c.B) < tolerance {
			return true
		}
	}
	if r > 200 && g > 200 && b > 200 && channelSpread(r, g, b) < 30 {
		return true
	}
	return brightness(r, g, b) > 180
}

// CleanSprite removes the backdrop using the color-set classifier: every
// pixel matching the detected background colors is cleared, then isolated
// light leftovers are swept by the edge cleanup pass.
func CleanSprite(src image.Image, method AnalyzeMethod) (*image.NRGBA, BackgroundColors) {
	dst := toNRGBA(src)
	bg := analyzeBackgroundColors(dst, method)
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := pixOffset(dst.Stride, x, y)
			if IsBackground(dst.Pix[off], dst.Pix[off+1], dst.Pix[off+2], bg, DefaultTolerance) {
				clearPixel(dst.Pix, off)
			}
		}
	}
	return CleanupEdges(dst), bg
}
