package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jazs69/ai-waste-sorter/internal/api"
	"github.com/jazs69/ai-waste-sorter/internal/config"
	"github.com/jazs69/ai-waste-sorter/internal/infrastructure"
	"github.com/jazs69/ai-waste-sorter/pkg/middleware"
	"github.com/jazs69/ai-waste-sorter/pkg/module"
	"github.com/jazs69/ai-waste-sorter/web/app"
	"github.com/jazs69/ai-waste-sorter/web/scalar"
)

type Modules struct {
	API    *module.Module
	Scalar *module.Module
	App    http.HandlerFunc
}

func NewModules(ctx context.Context, infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(ctx, cfg, infra)
	if err != nil {
		return nil, err
	}

	scalarModule := scalar.NewModule("/scalar", cfg.API.BasePath+"/openapi.json")
	scalarModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API:    apiModule,
		Scalar: scalarModule,
		App:    app.Handler(),
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Scalar)
	router.HandleNative("/", m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
