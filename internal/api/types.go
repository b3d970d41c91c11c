// Package api defines the wire types for the aspect-api HTTP endpoints.
// The JSON shapes mirror openapi.yaml.
package api

// CropFitRequest is the body for /v1/aspect/crop-fit and /v1/aspect/rescale.
type CropFitRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Presets selects built-in ratios by name. A missing field applies the
	// server's configured defaults; an explicit empty list enables none.
	Presets *[]string `json:"presets,omitempty"`

	// CustomRatios appends free-form entries, e.g. "21:9,32:9".
	CustomRatios string `json:"customRatios,omitempty"`

	// ForceRatioWidth/Height bypass candidate selection when both are > 0.
	ForceRatioWidth  int `json:"forceRatioWidth,omitempty"`
	ForceRatioHeight int `json:"forceRatioHeight,omitempty"`
}

// FitResponse is the result of a crop-fit or rescale call.
type FitResponse struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	RatioWidth  int      `json:"ratioWidth"`
	RatioHeight int      `json:"ratioHeight"`
	Warnings    []string `json:"warnings,omitempty"`
}

// MatchRequest is the body for /v1/resolution/match.
type MatchRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Presets selects built-in resolutions by name. Same omitted-vs-empty
	// semantics as CropFitRequest.Presets.
	Presets *[]string `json:"presets,omitempty"`

	// CustomResolutions appends free-form entries, e.g. "1920x1080,1280x720".
	CustomResolutions string `json:"customResolutions,omitempty"`
}

// MatchResponse is the result of a resolution match call.
type MatchResponse struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Warnings []string `json:"warnings,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}
