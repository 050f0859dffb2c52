// Package estimator turns a meal photo or description into a nutrition estimate.
package estimator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/kburn/internal/config"
	"github.com/theirongolddev/kburn/internal/model"
)

var (
	// ErrNoAPIKey indicates the remote provider has no key configured.
	ErrNoAPIKey = errors.New("estimator: no API key configured")
	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("estimator: unauthorized (API key invalid or revoked)")
	// ErrRateLimited indicates the provider rate limit was hit.
	ErrRateLimited = errors.New("estimator: rate limited")
	// ErrNoFoodDetected indicates the image contained nothing recognizable as food.
	ErrNoFoodDetected = errors.New("estimator: no food detected in image")
	// ErrEmptyRequest indicates neither an image nor a description was supplied.
	ErrEmptyRequest = errors.New("estimator: request has no image or description")
)

// maxImageSize bounds how much of an image file is read.
const maxImageSize = 15 << 20 // 15 MB, Rekognition's S3 limit

// Request is one estimation input. Filename is used as a hint by the
// simulated provider and to build a description when none is given.
type Request struct {
	Filename    string
	Image       []byte
	Description string
}

func (r Request) empty() bool {
	return r.Filename == "" && len(r.Image) == 0 && strings.TrimSpace(r.Description) == ""
}

// Estimator produces nutrition estimates.
type Estimator interface {
	Name() string
	Estimate(ctx context.Context, req Request) (model.Estimate, error)
}

// Providers lists the provider names accepted by New.
var Providers = []string{model.SourceSimulated, model.SourceOpenAI, model.SourceRekognition}

// New builds the estimator named by provider, falling back to the configured one.
func New(ctx context.Context, cfg config.Config, provider string) (Estimator, error) {
	if provider == "" {
		provider = cfg.Estimator.Provider
	}

	switch strings.ToLower(provider) {
	case "", model.SourceSimulated:
		return NewSimulated(nil), nil
	case model.SourceOpenAI:
		key := config.GetAPIKey(cfg)
		if key == "" {
			return nil, ErrNoAPIKey
		}
		return NewOpenAI(key, cfg.Estimator.BaseURL, cfg.Estimator.Model), nil
	case model.SourceRekognition:
		return NewRekognition(ctx, config.GetAWSRegion(cfg))
	}
	return nil, fmt.Errorf("estimator: unknown provider %q (want one of %s)", provider, strings.Join(Providers, ", "))
}

// ReadImage loads an image file into a Request.
func ReadImage(path string) (Request, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the local user
	if err != nil {
		return Request{}, fmt.Errorf("opening image: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return Request{}, fmt.Errorf("reading image: %w", err)
	}
	if len(data) > maxImageSize {
		return Request{}, fmt.Errorf("image %s exceeds %d bytes", filepath.Base(path), maxImageSize)
	}
	return Request{Filename: filepath.Base(path), Image: data}, nil
}
