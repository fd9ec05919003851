package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jazs69/ai-waste-sorter/pkg/routes"
)

func named(name string, hits *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*hits = append(*hits, name)
	}
}

func TestRegister(t *testing.T) {
	var hits []string
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/scans",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: named("list", &hits)},
			{Method: "GET", Pattern: "/{id}", Handler: named("find", &hits)},
			{Method: "POST", Pattern: "/batch", Handler: named("batch", &hits)},
		},
	})

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/scans", "list"},
		{"GET", "/scans/123", "find"},
		{"POST", "/scans/batch", "batch"},
	}

	for _, tt := range tests {
		hits = nil
		req := httptest.NewRequest(tt.method, tt.path, nil)
		mux.ServeHTTP(httptest.NewRecorder(), req)

		if len(hits) != 1 || hits[0] != tt.want {
			t.Errorf("%s %s hit %v, want [%s]", tt.method, tt.path, hits, tt.want)
		}
	}
}

func TestRegisterNestedGroups(t *testing.T) {
	var hits []string
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/admin",
		Children: []routes.Group{
			{
				Prefix: "/scans",
				Routes: []routes.Route{
					{Method: "DELETE", Pattern: "/{id}", Handler: named("purge", &hits)},
				},
			},
		},
	})

	req := httptest.NewRequest("DELETE", "/admin/scans/123", nil)
	mux.ServeHTTP(httptest.NewRecorder(), req)

	if len(hits) != 1 || hits[0] != "purge" {
		t.Errorf("nested route hit %v, want [purge]", hits)
	}
}

func TestRegisterMethodEnforced(t *testing.T) {
	var hits []string
	mux := http.NewServeMux()

	routes.Register(mux, routes.Group{
		Prefix: "/scans",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: named("create", &hits)},
		},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("DELETE", "/scans", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if len(hits) != 0 {
		t.Errorf("handler should not run for wrong method")
	}
}
