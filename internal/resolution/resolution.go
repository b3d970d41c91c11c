// Package resolution matches a source rectangle against a catalog of fixed
// resolutions that share its exact aspect ratio.
package resolution

import (
	"fmt"
	"sort"

	"aspect-api/internal/ratioparse"
)

// Size is an absolute resolution in pixels.
type Size struct {
	Width  int
	Height int
}

// Preset is a named built-in resolution toggled per request.
type Preset struct {
	Name string
	Size Size
}

// Presets lists the built-in resolutions by model family.
var Presets = []Preset{
	// SD 1.5
	{Name: "sd15_512x512", Size: Size{512, 512}},
	{Name: "sd_768x768", Size: Size{768, 768}}, // shared by SD 1.5 and SDXL
	{Name: "sd15_768x512", Size: Size{768, 512}},
	{Name: "sd15_512x768", Size: Size{512, 768}},
	{Name: "sd15_768x576", Size: Size{768, 576}},
	{Name: "sd15_576x768", Size: Size{576, 768}},
	{Name: "sd15_912x512", Size: Size{912, 512}},
	{Name: "sd15_512x912", Size: Size{512, 912}},

	// SDXL
	{Name: "sdxl_1024x1024", Size: Size{1024, 1024}},
	{Name: "sdxl_1152x768", Size: Size{1152, 768}},
	{Name: "sdxl_768x1152", Size: Size{768, 1152}},
	{Name: "sdxl_1152x864", Size: Size{1152, 864}},
	{Name: "sdxl_864x1152", Size: Size{864, 1152}},
	{Name: "sdxl_1360x768", Size: Size{1360, 768}},
	{Name: "sdxl_768x1360", Size: Size{768, 1360}},

	// Flux
	{Name: "flux_1408x1408", Size: Size{1408, 1408}},
	{Name: "flux_1728x1152", Size: Size{1728, 1152}},
	{Name: "flux_1664x1216", Size: Size{1664, 1216}},
	{Name: "flux_1920x1088", Size: Size{1920, 1088}},
	{Name: "flux_2176x960", Size: Size{2176, 960}},
}

// IsPreset reports whether name refers to a built-in resolution.
func IsPreset(name string) bool {
	for _, p := range Presets {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Catalog builds the candidate list for one call: enabled presets in table
// order, then custom "WxH,..." entries in textual order. Unknown preset
// names and malformed custom entries are skipped and reported as warnings.
func Catalog(presets []string, custom string) ([]Size, []string) {
	enabled := make(map[string]bool, len(presets))
	var warnings []string
	for _, name := range presets {
		if !IsPreset(name) {
			warnings = append(warnings, fmt.Sprintf("unknown resolution preset %q", name))
			continue
		}
		enabled[name] = true
	}

	var catalog []Size
	for _, p := range Presets {
		if enabled[p.Name] {
			catalog = append(catalog, p.Size)
		}
	}

	pairs, parseWarnings := ratioparse.ParseList(custom, "x")
	for _, pair := range pairs {
		catalog = append(catalog, Size{Width: pair.W, Height: pair.H})
	}
	return catalog, append(warnings, parseWarnings...)
}

// Match returns the candidate whose GCD-reduced aspect ratio equals the
// source's exactly and whose pixel count is closest to the source's. When
// two candidates are equally close, the larger one wins. With no candidates,
// or none sharing the source's ratio, the source is returned unchanged.
func Match(width, height int, candidates []Size) Size {
	ratioW, ratioH := reduce(width, height)
	sourcePixels := int64(width) * int64(height)

	var matching []Size
	for _, c := range candidates {
		if cw, ch := reduce(c.Width, c.Height); cw == ratioW && ch == ratioH {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return Size{Width: width, Height: height}
	}

	// Closest pixel count first; equal distances prefer the larger resolution.
	// The integer distance orders identically to the percentage difference
	// since the source pixel count is a constant positive factor.
	sort.SliceStable(matching, func(i, j int) bool {
		di := absDiff(pixels(matching[i]), sourcePixels)
		dj := absDiff(pixels(matching[j]), sourcePixels)
		if di != dj {
			return di < dj
		}
		return pixels(matching[i]) > pixels(matching[j])
	})
	return matching[0]
}

// reduce divides both components by their greatest common divisor, e.g.
// (1920, 1080) -> (16, 9).
func reduce(w, h int) (int, int) {
	d := gcd(w, h)
	return w / d, h / d
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func pixels(s Size) int64 {
	return int64(s.Width) * int64(s.Height)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
