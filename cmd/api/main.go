package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"

	"aspect-api/internal/api"
	"aspect-api/internal/aspect"
	"aspect-api/internal/config"
	"aspect-api/internal/health"
	"aspect-api/internal/resolution"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	middleware "github.com/oapi-codegen/chi-middleware"
)

const version = "1.0.0"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fatal("failed to load config", "err", err)
	}

	specPath := os.Getenv("OPENAPI_SPEC_PATH")
	if specPath == "" {
		specPath = "openapi.yaml"
	}
	swagger, err := loadOpenAPISpec(specPath)
	if err != nil {
		fatal("failed to load openapi spec", "err", err)
	}
	if err := swagger.Validate(context.Background()); err != nil {
		fatal("invalid openapi spec", "err", err)
	}

	router := chi.NewRouter()
	health.Register(router, nil, version)

	apiRouter := chi.NewRouter()
	apiRouter.Use(middleware.OapiRequestValidator(swagger))
	s := &server{cfg: cfg}
	apiRouter.Post("/v1/aspect/crop-fit", s.handleCropFit)
	apiRouter.Post("/v1/aspect/rescale", s.handleRescale)
	apiRouter.Post("/v1/resolution/match", s.handleMatch)
	router.Mount("/", apiRouter)

	addr := ":" + cfg.Port
	slog.Info("api listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fatal("api server failed", "err", err)
	}
}

type server struct {
	cfg *config.Config
}

func (s *server) handleCropFit(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeCropFit(w, r)
	if !ok {
		return
	}

	if forced, use := forcedRatio(req); use {
		writeFit(w, aspect.FitCropTo(req.Width, req.Height, forced), nil)
		return
	}

	catalog, warnings := aspect.Catalog(s.ratioPresets(req.Presets), req.CustomRatios)
	logWarnings(r, warnings)
	writeFit(w, aspect.FitCrop(req.Width, req.Height, catalog), warnings)
}

func (s *server) handleRescale(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeCropFit(w, r)
	if !ok {
		return
	}

	if forced, use := forcedRatio(req); use {
		writeFit(w, aspect.RescaleNearestTo(req.Width, req.Height, forced), nil)
		return
	}

	catalog, warnings := aspect.Catalog(s.ratioPresets(req.Presets), req.CustomRatios)
	logWarnings(r, warnings)
	writeFit(w, aspect.RescaleNearest(req.Width, req.Height, catalog), warnings)
}

func (s *server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req api.MatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !s.checkDimensions(w, req.Width, req.Height) {
		return
	}

	presets := s.cfg.DefaultResolutionPresets
	if req.Presets != nil {
		presets = *req.Presets
	}
	catalog, warnings := resolution.Catalog(presets, req.CustomResolutions)
	logWarnings(r, warnings)

	matched := resolution.Match(req.Width, req.Height, catalog)
	writeJSON(w, api.MatchResponse{
		Width:    matched.Width,
		Height:   matched.Height,
		Warnings: warnings,
	}, http.StatusOK)
}

func (s *server) decodeCropFit(w http.ResponseWriter, r *http.Request) (api.CropFitRequest, bool) {
	var req api.CropFitRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}
	if !s.checkDimensions(w, req.Width, req.Height) {
		return req, false
	}
	return req, true
}

func (s *server) checkDimensions(w http.ResponseWriter, width, height int) bool {
	if width <= 0 || height <= 0 {
		writeError(w, http.StatusBadRequest, "width and height must be greater than 0")
		return false
	}
	if width > s.cfg.MaxDimension || height > s.cfg.MaxDimension {
		writeError(w, http.StatusBadRequest, "width and height must not exceed the configured maximum")
		return false
	}
	return true
}

func (s *server) ratioPresets(requested *[]string) []string {
	if requested != nil {
		return *requested
	}
	return s.cfg.DefaultRatioPresets
}

func forcedRatio(req api.CropFitRequest) (aspect.Ratio, bool) {
	// A value <= 0 in either slot means no override.
	if req.ForceRatioWidth > 0 && req.ForceRatioHeight > 0 {
		return aspect.Ratio{W: req.ForceRatioWidth, H: req.ForceRatioHeight}, true
	}
	return aspect.Ratio{}, false
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func writeFit(w http.ResponseWriter, result aspect.FitResult, warnings []string) {
	writeJSON(w, api.FitResponse{
		Width:       result.Width,
		Height:      result.Height,
		RatioWidth:  result.Ratio.W,
		RatioHeight: result.Ratio.H,
		Warnings:    warnings,
	}, http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, api.ErrorResponse{Message: message}, status)
}

func logWarnings(r *http.Request, warnings []string) {
	for _, warning := range warnings {
		slog.Warn("catalog entry skipped", "path", r.URL.Path, "reason", warning)
	}
}

func loadOpenAPISpec(path string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromFile(path)
}

func fatal(msg string, attrs ...any) {
	slog.Error(msg, attrs...)
	os.Exit(1)
}
