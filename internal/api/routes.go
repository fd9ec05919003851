package api

import (
	"net/http"

	"github.com/jazs69/ai-waste-sorter/internal/scans"
	"github.com/jazs69/ai-waste-sorter/pkg/handlers"
	"github.com/jazs69/ai-waste-sorter/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, runtime *Runtime, spec http.HandlerFunc) {
	routes.Register(
		mux,
		domain.Scans.Handler(runtime.MaxUpload).Routes(),
		categoryRoutes(),
	)

	mux.HandleFunc("GET /openapi.json", spec)
}

// categoryRoutes exposes the closed category set for UI consumption.
func categoryRoutes() routes.Group {
	return routes.Group{
		Prefix: "/categories",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					handlers.RespondJSON(w, http.StatusOK, scans.Categories())
				},
			},
		},
	}
}
