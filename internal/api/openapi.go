package api

import (
	"github.com/jazs69/ai-waste-sorter/internal/config"
	"github.com/jazs69/ai-waste-sorter/internal/scans"
	"github.com/jazs69/ai-waste-sorter/pkg/openapi"
)

// buildSpec constructs the OpenAPI document for the scan API.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec("AI Waste Sorter API", cfg.Version)
	spec.Info.Description = "Upload waste item images and classify them with a hosted vision model."
	spec.AddServer(cfg.API.BasePath)

	spec.AddSchema("Scan", scanSchema())
	spec.AddSchema("Error", &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"error": {Type: "string"},
		},
	})
	spec.AddSchema("BatchResult", &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"scan":     openapi.SchemaRef("Scan"),
			"filename": {Type: "string"},
			"error":    {Type: "string"},
		},
	})

	idParam := &openapi.Parameter{
		Name:     "id",
		In:       "path",
		Required: true,
		Schema:   &openapi.Schema{Type: "string", Format: "uuid"},
	}

	spec.AddPath("/scans", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "List scans",
			OperationID: "listScans",
			Tags:        []string{"scans"},
			Parameters: []*openapi.Parameter{
				{Name: "page", In: "query", Schema: &openapi.Schema{Type: "integer"}},
				{Name: "page_size", In: "query", Schema: &openapi.Schema{Type: "integer"}},
				{Name: "search", In: "query", Schema: &openapi.Schema{Type: "string"}},
				{Name: "sort", In: "query", Schema: &openapi.Schema{Type: "string"}},
				{Name: "category", In: "query", Schema: categoryEnum()},
				{Name: "status", In: "query", Schema: &openapi.Schema{Type: "string"}},
			},
			Responses: map[string]*openapi.Response{
				"200": jsonResponse("A page of scans", &openapi.Schema{Type: "object"}),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Upload and classify a waste item image",
			OperationID: "createScan",
			Tags:        []string{"scans"},
			RequestBody: &openapi.RequestBody{
				Required: true,
				Content: map[string]*openapi.MediaType{
					"multipart/form-data": {
						Schema: &openapi.Schema{
							Type: "object",
							Properties: map[string]*openapi.Schema{
								"image": {Type: "string", Format: "binary"},
							},
						},
					},
				},
			},
			Responses: map[string]*openapi.Response{
				"201": jsonResponse("The classified scan", openapi.SchemaRef("Scan")),
				"400": jsonResponse("Invalid upload", openapi.SchemaRef("Error")),
				"502": jsonResponse("Vision provider failure", openapi.SchemaRef("Error")),
			},
		},
	})

	spec.AddPath("/scans/batch", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Upload and classify several images",
			OperationID: "createScanBatch",
			Tags:        []string{"scans"},
			Responses: map[string]*openapi.Response{
				"200": jsonResponse("Per-file results", &openapi.Schema{
					Type:  "array",
					Items: openapi.SchemaRef("BatchResult"),
				}),
			},
		},
	})

	spec.AddPath("/scans/search", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Search scans with JSON criteria",
			OperationID: "searchScans",
			Tags:        []string{"scans"},
			Responses: map[string]*openapi.Response{
				"200": jsonResponse("A page of scans", &openapi.Schema{Type: "object"}),
			},
		},
	})

	spec.AddPath("/scans/{id}", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "Find a scan",
			OperationID: "findScan",
			Tags:        []string{"scans"},
			Parameters:  []*openapi.Parameter{idParam},
			Responses: map[string]*openapi.Response{
				"200": jsonResponse("The scan", openapi.SchemaRef("Scan")),
				"404": jsonResponse("Not found", openapi.SchemaRef("Error")),
			},
		},
		Delete: &openapi.Operation{
			Summary:     "Delete a scan",
			OperationID: "deleteScan",
			Tags:        []string{"scans"},
			Parameters:  []*openapi.Parameter{idParam},
			Responses: map[string]*openapi.Response{
				"204": {Description: "Deleted"},
				"404": jsonResponse("Not found", openapi.SchemaRef("Error")),
			},
		},
	})

	spec.AddPath("/scans/{id}/image", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "Download the stored image",
			OperationID: "scanImage",
			Tags:        []string{"scans"},
			Parameters:  []*openapi.Parameter{idParam},
			Responses: map[string]*openapi.Response{
				"200": {Description: "The image bytes"},
				"404": jsonResponse("Not found", openapi.SchemaRef("Error")),
			},
		},
	})

	spec.AddPath("/scans/{id}/reclassify", &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Re-run classification against the stored image",
			OperationID: "reclassifyScan",
			Tags:        []string{"scans"},
			Parameters:  []*openapi.Parameter{idParam},
			Responses: map[string]*openapi.Response{
				"200": jsonResponse("The reclassified scan", openapi.SchemaRef("Scan")),
				"404": jsonResponse("Not found", openapi.SchemaRef("Error")),
				"502": jsonResponse("Vision provider failure", openapi.SchemaRef("Error")),
			},
		},
	})

	spec.AddPath("/categories", &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "List waste categories",
			OperationID: "listCategories",
			Tags:        []string{"categories"},
			Responses: map[string]*openapi.Response{
				"200": jsonResponse("The category labels", &openapi.Schema{
					Type:  "array",
					Items: categoryEnum(),
				}),
			},
		},
	})

	return spec
}

func scanSchema() *openapi.Schema {
	return &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":            {Type: "string", Format: "uuid"},
			"filename":      {Type: "string"},
			"content_type":  {Type: "string"},
			"size_bytes":    {Type: "integer"},
			"storage_key":   {Type: "string"},
			"status":        {Type: "string", Enum: []string{scans.StatusPending, scans.StatusClassified, scans.StatusFailed}},
			"category":      categoryEnum(),
			"raw_label":     {Type: "string"},
			"rationale":     {Type: "string"},
			"provider":      {Type: "string"},
			"model":         {Type: "string"},
			"input_tokens":  {Type: "integer"},
			"output_tokens": {Type: "integer"},
			"cost_usd":      {Type: "number"},
			"created_at":    {Type: "string", Format: "date-time"},
			"updated_at":    {Type: "string", Format: "date-time"},
			"classified_at": {Type: "string", Format: "date-time"},
		},
	}
}

func categoryEnum() *openapi.Schema {
	values := make([]string, 0, len(scans.Categories())+1)
	for _, c := range scans.Categories() {
		values = append(values, string(c))
	}
	values = append(values, string(scans.CategoryUnknown))
	return &openapi.Schema{Type: "string", Enum: values}
}

func jsonResponse(desc string, schema *openapi.Schema) *openapi.Response {
	return &openapi.Response{
		Description: desc,
		Content: map[string]*openapi.MediaType{
			"application/json": {Schema: schema},
		},
	}
}
