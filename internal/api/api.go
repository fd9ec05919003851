// Package api assembles the API module: runtime construction, domain systems,
// route registration, and the OpenAPI document.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jazs69/ai-waste-sorter/internal/config"
	"github.com/jazs69/ai-waste-sorter/internal/infrastructure"
	"github.com/jazs69/ai-waste-sorter/pkg/middleware"
	"github.com/jazs69/ai-waste-sorter/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(ctx context.Context, cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := NewRuntime(ctx, cfg, infra)
	if err != nil {
		return nil, err
	}

	domain := NewDomain(runtime)
	spec := buildSpec(cfg)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime, spec.Handler())

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))

	if cfg.API.Auth.Enabled {
		verifier, err := middleware.NewVerifier(ctx, &cfg.API.Auth)
		if err != nil {
			return nil, fmt.Errorf("auth verifier init failed: %w", err)
		}
		m.Use(middleware.Auth(verifier))
	}

	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
