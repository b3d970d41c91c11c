package aspect

// FitCrop returns the largest sub-rectangle of (width, height) whose sides
// are exact integer multiples of one candidate ratio, choosing the candidate
// that discards the fewest pixels. Ties go to the candidate listed first.
// With no candidates the source is returned unchanged with ratio (1,1).
//
// The result never exceeds the source in either dimension, and both sides
// share the same unit count: Width == n*Ratio.W and Height == n*Ratio.H. A
// source smaller than one ratio unit yields a zero-sized rectangle.
func FitCrop(width, height int, candidates []Ratio) FitResult {
	if len(candidates) == 0 {
		return FitResult{Width: width, Height: height, Ratio: Ratio{1, 1}}
	}

	best := FitCropTo(width, height, candidates[0])
	bestLoss := pixelLoss(width, height, best)
	for _, ratio := range candidates[1:] {
		fitted := FitCropTo(width, height, ratio)
		if loss := pixelLoss(width, height, fitted); loss < bestLoss {
			best = fitted
			bestLoss = loss
		}
	}
	return best
}

// FitCropTo fits (width, height) to a single ratio, skipping candidate
// selection.
func FitCropTo(width, height int, ratio Ratio) FitResult {
	var newW, newH int
	if float64(width)/float64(height) > float64(ratio.W)/float64(ratio.H) {
		// Source is proportionally wider: the height is the limiting side.
		units := height / ratio.H
		newW, newH = units*ratio.W, units*ratio.H
		if newW > width {
			// Integer truncation skew; size by width instead.
			units = width / ratio.W
			newW, newH = units*ratio.W, units*ratio.H
		}
	} else {
		units := width / ratio.W
		newW, newH = units*ratio.W, units*ratio.H
		if newH > height {
			units = height / ratio.H
			newW, newH = units*ratio.W, units*ratio.H
		}
	}
	return FitResult{Width: newW, Height: newH, Ratio: ratio}
}

func pixelLoss(width, height int, fitted FitResult) int64 {
	return int64(width)*int64(height) - int64(fitted.Width)*int64(fitted.Height)
}
