// Package ratioparse parses comma-separated integer pair lists such as
// "21:9,32:9" (aspect ratios) or "1920x1080,1280x720" (resolutions).
//
// Parsing never fails: malformed or non-positive entries are dropped and
// reported back as warnings so the caller decides how to surface them.
package ratioparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Pair is a validated positive integer pair parsed from a catalog string.
type Pair struct {
	W int
	H int
}

// ParseList splits text on commas and parses each token as "<w><sep><h>".
// Tokens without the separator, with non-integer sides, or with a side <= 0
// are skipped. The returned warnings describe every skipped non-empty token.
func ParseList(text, sep string) ([]Pair, []string) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var pairs []Pair
	var warnings []string
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		pair, err := parsePair(token, sep)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping %q: %v", token, err))
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs, warnings
}

func parsePair(token, sep string) (Pair, error) {
	left, right, found := strings.Cut(token, sep)
	if !found {
		return Pair{}, fmt.Errorf("missing %q separator", sep)
	}
	w, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return Pair{}, fmt.Errorf("bad integer %q", strings.TrimSpace(left))
	}
	h, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return Pair{}, fmt.Errorf("bad integer %q", strings.TrimSpace(right))
	}
	if w <= 0 || h <= 0 {
		return Pair{}, fmt.Errorf("values must be positive, got %dx%d", w, h)
	}
	return Pair{W: w, H: h}, nil
}
