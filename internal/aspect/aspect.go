// Package aspect selects crop and rescale dimensions that fit a source
// rectangle to a catalog of candidate aspect ratios.
package aspect

import (
	"fmt"

	"aspect-api/internal/ratioparse"
)

// Ratio is a width:height proportion. Both components are positive; it is
// not reduced to lowest terms, so (2,2) and (1,1) are distinct candidates.
type Ratio struct {
	W int
	H int
}

// FitResult is the chosen output rectangle plus the ratio that produced it.
type FitResult struct {
	Width  int
	Height int
	Ratio  Ratio
}

// Preset is a named built-in ratio toggled per request.
type Preset struct {
	Name  string
	Ratio Ratio
}

// Presets lists the built-in ratios. Order matters: when two candidates fit
// equally well the one listed first wins, and enabled presets always enter
// the catalog in this order regardless of request order.
var Presets = []Preset{
	{Name: "1:1", Ratio: Ratio{1, 1}},
	{Name: "2:3", Ratio: Ratio{2, 3}},
	{Name: "3:2", Ratio: Ratio{3, 2}},
	{Name: "4:3", Ratio: Ratio{4, 3}},
	{Name: "3:4", Ratio: Ratio{3, 4}},
	{Name: "16:9", Ratio: Ratio{16, 9}},
	{Name: "9:16", Ratio: Ratio{9, 16}},
}

// PresetNames returns the names of all built-in ratios in evaluation order.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// IsPreset reports whether name refers to a built-in ratio.
func IsPreset(name string) bool {
	for _, p := range Presets {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Catalog builds the candidate list for one call: enabled presets in table
// order, then custom "W:H,..." entries in textual order. Duplicates are kept
// and evaluated independently. Unknown preset names and malformed custom
// entries are skipped and reported as warnings.
func Catalog(presets []string, custom string) ([]Ratio, []string) {
	enabled := make(map[string]bool, len(presets))
	var warnings []string
	for _, name := range presets {
		if !IsPreset(name) {
			warnings = append(warnings, fmt.Sprintf("unknown ratio preset %q", name))
			continue
		}
		enabled[name] = true
	}

	var catalog []Ratio
	for _, p := range Presets {
		if enabled[p.Name] {
			catalog = append(catalog, p.Ratio)
		}
	}

	pairs, parseWarnings := ratioparse.ParseList(custom, ":")
	for _, pair := range pairs {
		catalog = append(catalog, Ratio{W: pair.W, H: pair.H})
	}
	return catalog, append(warnings, parseWarnings...)
}
