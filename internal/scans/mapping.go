package scans

import (
	"net/url"

	"github.com/jazs69/ai-waste-sorter/pkg/query"
	"github.com/jazs69/ai-waste-sorter/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "scans", "s").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("storage_key", "StorageKey").
	Project("status", "Status").
	Project("category", "Category").
	Project("raw_label", "RawLabel").
	Project("rationale", "Rationale").
	Project("provider", "Provider").
	Project("model", "Model").
	Project("input_tokens", "InputTokens").
	Project("output_tokens", "OutputTokens").
	Project("cost_usd", "CostUSD").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt").
	Project("classified_at", "ClassifiedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for scan queries. Nil fields
// are ignored. Filename uses case-insensitive contains matching; the rest
// match exactly.
type Filters struct {
	Status      *string `json:"status,omitempty"`
	Category    *string `json:"category,omitempty"`
	ContentType *string `json:"content_type,omitempty"`
	Filename    *string `json:"filename,omitempty"`
	Provider    *string `json:"provider,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("Category", f.Category).
		WhereEquals("ContentType", f.ContentType).
		WhereContains("Filename", f.Filename).
		WhereEquals("Provider", f.Provider)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}
	if c := values.Get("category"); c != "" {
		f.Category = &c
	}
	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}
	if fn := values.Get("filename"); fn != "" {
		f.Filename = &fn
	}
	if p := values.Get("provider"); p != "" {
		f.Provider = &p
	}

	return f
}

func scanRow(s repository.Scanner) (Scan, error) {
	var sc Scan
	err := s.Scan(
		&sc.ID,
		&sc.Filename,
		&sc.ContentType,
		&sc.SizeBytes,
		&sc.StorageKey,
		&sc.Status,
		&sc.Category,
		&sc.RawLabel,
		&sc.Rationale,
		&sc.Provider,
		&sc.Model,
		&sc.InputTokens,
		&sc.OutputTokens,
		&sc.CostUSD,
		&sc.CreatedAt,
		&sc.UpdatedAt,
		&sc.ClassifiedAt,
	)
	return sc, err
}
