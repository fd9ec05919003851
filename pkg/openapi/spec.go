package openapi

import (
	"encoding/json"
	"net/http"
)

// Spec represents an OpenAPI 3.1 specification document.
type Spec struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// NewSpec creates a Spec with the given title and version.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths:      make(map[string]*PathItem),
		Components: &Components{Schemas: make(map[string]*Schema)},
	}
}

// AddServer appends a server URL to the spec.
func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddPath registers the operations for a path.
func (s *Spec) AddPath(path string, item *PathItem) {
	s.Paths[path] = item
}

// AddSchema registers a reusable component schema.
func (s *Spec) AddSchema(name string, schema *Schema) {
	s.Components.Schemas[name] = schema
}

// SchemaRef returns a $ref schema pointing at a component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// Handler returns an HTTP handler serving the spec as JSON. The document is
// serialized once at registration.
func (s *Spec) Handler() http.HandlerFunc {
	data, err := json.Marshal(s)
	if err != nil {
		panic("openapi spec marshal: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
