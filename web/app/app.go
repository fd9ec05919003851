// Package app serves the embedded single-page waste sorter UI.
package app

import (
	"embed"
	"net/http"

	"github.com/jazs69/ai-waste-sorter/pkg/web"
)

//go:embed assets
var staticFS embed.FS

// Handler serves the embedded UI. Unmatched paths fall back to index.html so
// client-side routes resolve after a hard refresh.
func Handler() http.HandlerFunc {
	router := web.NewRouter()

	router.HandleFunc("GET /assets/", web.AssetServer(staticFS, "assets", "/assets/"))

	index := web.AssetFile(staticFS, "assets/index.html", "index.html")
	router.HandleFunc("GET /{$}", index)
	router.SetFallback(index)

	return router.ServeHTTP
}
