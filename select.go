package spritebg

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Candidate transparency ratios are plausible only inside this band;
// near-zero means nothing was removed, near-total means the sprite itself
// was eaten.
const (
	minAcceptedRatio = 0.3
	maxAcceptedRatio = 0.8
)

// StrategyResult records one strategy run inside SelectBest.
type StrategyResult struct {
	Method Method
	Ratio  float64
	Err    error
}

// Selection is the outcome of running all removal strategies on one image.
type Selection struct {
	Image    *image.NRGBA
	Method   Method
	Ratio    float64
	Fallback bool
	Tried    []StrategyResult
}

// SelectBest runs the checkerboard, white/gray and edge-flood strategies
// on fresh copies of src, scores each by transparency ratio, and keeps the
// accepted candidate closest to 50%. When no candidate lands inside the
// (0.3, 0.8) band it falls back to the raw white/gray result regardless of
// its ratio. The winner gets the edge cleanup pass; ratios are reported
// from the raw strategy output.
func SelectBest(src image.Image) Selection {
	methods := []Method{MethodCheckerboard, MethodWhiteGray, MethodEdgeFlood}

	results := make([]StrategyResult, 0, len(methods))
	images := make([]*image.NRGBA, 0, len(methods))
	var whiteGray *image.NRGBA

	for _, m := range methods {
		img, _, err := Remove(src, m)
		res := StrategyResult{Method: m, Err: err}
		if err == nil {
			res.Ratio = TransparencyRatio(img)
		}
		results = append(results, res)
		images = append(images, img)
		if m == MethodWhiteGray && err == nil {
			whiteGray = img
		}
	}

	// Accepted candidates, scored by distance to the 50% sweet spot.
	var accepted []int
	var distances []float64
	for i, res := range results {
		if res.Err != nil {
			continue
		}
		if res.Ratio > minAcceptedRatio && res.Ratio < maxAcceptedRatio {
			accepted = append(accepted, i)
			distances = append(distances, math.Abs(res.Ratio-0.5))
		}
	}

	if len(accepted) > 0 {
		best := accepted[floats.MinIdx(distances)]
		return Selection{
			Image:  CleanupEdges(images[best]),
			Method: results[best].Method,
			Ratio:  results[best].Ratio,
			Tried:  results,
		}
	}

	sel := Selection{Method: MethodWhiteGray, Fallback: true, Tried: results}
	if whiteGray != nil {
		sel.Image = CleanupEdges(whiteGray)
		sel.Ratio = TransparencyRatio(whiteGray)
	}
	return sel
}
