package aspect

import "testing"

func TestFitCropEmptyCatalog(t *testing.T) {
	result := FitCrop(1024, 768, nil)
	if result.Width != 1024 || result.Height != 768 {
		t.Fatalf("expected source unchanged, got %dx%d", result.Width, result.Height)
	}
	if result.Ratio != (Ratio{1, 1}) {
		t.Fatalf("expected sentinel ratio 1:1, got %v", result.Ratio)
	}
}

func TestFitCropExactFit(t *testing.T) {
	// Source already satisfies the winning ratio: output equals input.
	result := FitCrop(1920, 1080, []Ratio{{16, 9}})
	if result.Width != 1920 || result.Height != 1080 || result.Ratio != (Ratio{16, 9}) {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestFitCropChoosesMinimumLoss(t *testing.T) {
	result := FitCrop(1920, 1080, []Ratio{{4, 3}, {16, 9}})
	if result.Ratio != (Ratio{16, 9}) {
		t.Fatalf("expected zero-loss 16:9 to win, got %v", result.Ratio)
	}
	if result.Width != 1920 || result.Height != 1080 {
		t.Fatalf("unexpected dimensions: %dx%d", result.Width, result.Height)
	}
}

func TestFitCropTieBreakFirstInCatalog(t *testing.T) {
	// Both candidates fit 1024x1024 with zero loss; the first listed wins.
	result := FitCrop(1024, 1024, []Ratio{{1, 1}, {2, 2}})
	if result.Ratio != (Ratio{1, 1}) {
		t.Fatalf("expected first candidate 1:1 to win the tie, got %v", result.Ratio)
	}
	if result.Width != 1024 || result.Height != 1024 {
		t.Fatalf("unexpected dimensions: %dx%d", result.Width, result.Height)
	}
}

func TestFitCropUnitMultipleInvariant(t *testing.T) {
	catalog := []Ratio{{1, 1}, {2, 3}, {3, 2}, {4, 3}, {3, 4}, {16, 9}, {9, 16}, {21, 9}}
	sources := [][2]int{{1920, 1080}, {1080, 1920}, {1023, 767}, {700, 700}, {8192, 1}, {13, 7}}

	for _, src := range sources {
		result := FitCrop(src[0], src[1], catalog)
		r := result.Ratio
		if result.Width > src[0] || result.Height > src[1] {
			t.Fatalf("source %v: result %dx%d exceeds source", src, result.Width, result.Height)
		}
		if result.Width%r.W != 0 || result.Height%r.H != 0 {
			t.Fatalf("source %v: %dx%d not a multiple of %v", src, result.Width, result.Height, r)
		}
		if result.Width/r.W != result.Height/r.H {
			t.Fatalf("source %v: unit counts differ for %dx%d ratio %v", src, result.Width, result.Height, r)
		}
	}
}

func TestFitCropPortrait(t *testing.T) {
	result := FitCrop(1080, 1920, []Ratio{{9, 16}})
	if result.Width != 1080 || result.Height != 1920 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestFitCropToForcedRatio(t *testing.T) {
	// 1000x900 forced to 4:3: width is limiting, 250 units -> 1000x750.
	result := FitCropTo(1000, 900, Ratio{4, 3})
	if result.Width != 1000 || result.Height != 750 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Ratio != (Ratio{4, 3}) {
		t.Fatalf("expected forced ratio in result, got %v", result.Ratio)
	}
}

func TestFitCropSourceSmallerThanOneUnit(t *testing.T) {
	// Not even one 16x9 unit fits: the zero-sized result surfaces as-is.
	result := FitCropTo(2, 2, Ratio{16, 9})
	if result.Width != 0 || result.Height != 0 {
		t.Fatalf("expected 0x0, got %dx%d", result.Width, result.Height)
	}
}
