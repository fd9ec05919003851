package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jazs69/ai-waste-sorter/pkg/module"
)

func echoPath() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
}

func TestNewInvalidPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"no leading slash", "api"},
		{"multi-level", "/api/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) should panic", tt.prefix)
				}
			}()
			module.New(tt.prefix, echoPath())
		})
	}
}

func TestServeStripsPrefix(t *testing.T) {
	m := module.New("/api", echoPath())

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api/scans/123", nil))

	if got := rec.Body.String(); got != "/scans/123" {
		t.Errorf("inner path = %q, want /scans/123", got)
	}
}

func TestServePrefixRoot(t *testing.T) {
	m := module.New("/api", echoPath())

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api", nil))

	if got := rec.Body.String(); got != "/" {
		t.Errorf("inner path = %q, want /", got)
	}
}

func TestServeAppliesMiddleware(t *testing.T) {
	m := module.New("/api", echoPath())
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "api")
			next.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/api/scans", nil))

	if rec.Header().Get("X-Module") != "api" {
		t.Error("module middleware did not run")
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPath()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/scans", nil))

	if got := rec.Body.String(); got != "/scans" {
		t.Errorf("module response = %q, want /scans", got)
	}
}

func TestRouterNativeFallback(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPath()))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	if got := rec.Body.String(); got != "ok" {
		t.Errorf("native response = %q, want ok", got)
	}
}

func TestRouterTrimsTrailingSlash(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPath()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/scans/", nil))

	if got := rec.Body.String(); got != "/scans" {
		t.Errorf("module response = %q, want /scans", got)
	}
}

func TestRouterUnmatchedReturns404(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPath()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
