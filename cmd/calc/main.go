// Command calc computes a single crop-fit, rescale, or resolution match and
// prints the result to stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"aspect-api/internal/aspect"
	"aspect-api/internal/ratioparse"
	"aspect-api/internal/resolution"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	width := flag.Int("width", 1024, "source width in pixels")
	height := flag.Int("height", 1024, "source height in pixels")
	mode := flag.String("mode", "crop", `operation: "crop", "rescale" or "match"`)
	presets := flag.String("presets", "", "comma-separated preset names; empty enables every ratio preset (crop/rescale) or none (match)")
	custom := flag.String("custom", "", `extra candidates: "W:H,..." for crop/rescale, "WxH,..." for match`)
	force := flag.String("force", "", `forced ratio "W:H", bypasses candidate selection (crop/rescale only)`)
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fatal("width and height must be greater than 0")
	}

	switch *mode {
	case "crop", "rescale":
		runFit(*mode, *width, *height, *presets, *custom, *force)
	case "match":
		runMatch(*width, *height, *presets, *custom)
	default:
		fatal("unknown mode", "mode", *mode)
	}
}

func runFit(mode string, width, height int, presets, custom, force string) {
	if force != "" {
		pairs, warnings := ratioparse.ParseList(force, ":")
		logWarnings(warnings)
		if len(pairs) != 1 {
			fatal(`-force must be a single "W:H" pair`)
		}
		printFit(fitTo(mode, width, height, aspect.Ratio{W: pairs[0].W, H: pairs[0].H}))
		return
	}

	names := aspect.PresetNames()
	if presets != "" {
		names = splitNames(presets)
	}
	catalog, warnings := aspect.Catalog(names, custom)
	logWarnings(warnings)

	if mode == "crop" {
		printFit(aspect.FitCrop(width, height, catalog))
		return
	}
	printFit(aspect.RescaleNearest(width, height, catalog))
}

func fitTo(mode string, width, height int, ratio aspect.Ratio) aspect.FitResult {
	if mode == "crop" {
		return aspect.FitCropTo(width, height, ratio)
	}
	return aspect.RescaleNearestTo(width, height, ratio)
}

func runMatch(width, height int, presets, custom string) {
	var names []string
	if presets != "" {
		names = splitNames(presets)
	}
	catalog, warnings := resolution.Catalog(names, custom)
	logWarnings(warnings)

	matched := resolution.Match(width, height, catalog)
	fmt.Printf("%dx%d\n", matched.Width, matched.Height)
}

func printFit(result aspect.FitResult) {
	fmt.Printf("%dx%d (%d:%d)\n", result.Width, result.Height, result.Ratio.W, result.Ratio.H)
}

func splitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func logWarnings(warnings []string) {
	for _, warning := range warnings {
		slog.Warn("catalog entry skipped", "reason", warning)
	}
}

func fatal(msg string, attrs ...any) {
	slog.Error(msg, attrs...)
	os.Exit(1)
}
