package aspect

import "math"

// RescaleNearest shrinks one side of (width, height) so the result matches
// the candidate ratio numerically closest to the source's own ratio. Unlike
// FitCrop the output is not snapped to integer ratio units; the kept side
// stays as-is and the other is truncated to the target proportion.
// With no candidates the source is returned unchanged with ratio (1,1).
func RescaleNearest(width, height int, candidates []Ratio) FitResult {
	if len(candidates) == 0 {
		return FitResult{Width: width, Height: height, Ratio: Ratio{1, 1}}
	}

	current := float64(width) / float64(height)
	best := candidates[0]
	bestDiff := math.Abs(current - float64(best.W)/float64(best.H))
	for _, ratio := range candidates[1:] {
		// Strictly smaller only, so the first of equally close candidates wins.
		if diff := math.Abs(current - float64(ratio.W)/float64(ratio.H)); diff < bestDiff {
			best = ratio
			bestDiff = diff
		}
	}
	return RescaleNearestTo(width, height, best)
}

// RescaleNearestTo rescales (width, height) to a single target ratio,
// skipping candidate selection. Truncation, not rounding: the shrunk side is
// floor(kept * target proportion).
func RescaleNearestTo(width, height int, ratio Ratio) FitResult {
	current := float64(width) / float64(height)
	target := float64(ratio.W) / float64(ratio.H)

	if current > target {
		// Source is proportionally wider: keep the height, shrink the width.
		return FitResult{Width: int(float64(height) * target), Height: height, Ratio: ratio}
	}
	return FitResult{Width: width, Height: int(float64(width) / target), Ratio: ratio}
}
