package api

import (
	"context"
	"fmt"

	"github.com/jazs69/ai-waste-sorter/internal/config"
	"github.com/jazs69/ai-waste-sorter/internal/infrastructure"
	"github.com/jazs69/ai-waste-sorter/internal/vision"
	"github.com/jazs69/ai-waste-sorter/pkg/pagination"
)

// Runtime extends Infrastructure with the API-scoped logger, the vision
// analyzer, and API configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Analyzer   vision.Analyzer
	Pagination pagination.Config
	Vision     config.VisionConfig
	MaxUpload  int64
}

// NewRuntime creates an API runtime, constructing the vision analyzer for
// the configured provider.
func NewRuntime(ctx context.Context, cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	analyzer, err := newAnalyzer(ctx, &cfg.Vision)
	if err != nil {
		return nil, fmt.Errorf("vision analyzer init failed: %w", err)
	}

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Analyzer:   analyzer,
		Pagination: cfg.API.Pagination,
		Vision:     cfg.Vision,
		MaxUpload:  cfg.API.MaxUploadSizeBytes(),
	}, nil
}

func newAnalyzer(ctx context.Context, cfg *config.VisionConfig) (vision.Analyzer, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return vision.NewGeminiAnalyzer(ctx, cfg.APIKey, cfg.Model)
	case config.ProviderOpenAI:
		return vision.NewOpenAIAnalyzer(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", cfg.Provider)
	}
}
