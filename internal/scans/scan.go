// Package scans implements the waste scan domain: uploaded waste item images,
// their stored blobs, and the classification results produced by the vision
// model.
package scans

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Scan statuses. A scan starts pending, becomes classified once the vision
// call succeeds, or failed when the provider call errors (the row and blob
// are kept so the scan can be retried).
const (
	StatusPending    = "pending"
	StatusClassified = "classified"
	StatusFailed     = "failed"
)

// Scan represents an uploaded waste item image and its classification result.
type Scan struct {
	ID           uuid.UUID  `json:"id"`
	Filename     string     `json:"filename"`
	ContentType  string     `json:"content_type"`
	SizeBytes    int64      `json:"size_bytes"`
	StorageKey   string     `json:"storage_key"`
	Status       string     `json:"status"`
	Category     string     `json:"category"`
	RawLabel     string     `json:"raw_label"`
	Rationale    string     `json:"rationale"`
	Provider     string     `json:"provider"`
	Model        string     `json:"model"`
	InputTokens  int64      `json:"input_tokens"`
	OutputTokens int64      `json:"output_tokens"`
	CostUSD      float64    `json:"cost_usd"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ClassifiedAt *time.Time `json:"classified_at"`
}

// CreateCommand carries the data needed to upload and classify a new scan.
// Data holds the raw image bytes.
type CreateCommand struct {
	Data        []byte
	Filename    string
	ContentType string
}

// BatchResult reports the outcome of a single file within a batch upload.
// On success Scan is populated and Error is empty.
type BatchResult struct {
	Scan     *Scan  `json:"scan,omitempty"`
	Filename string `json:"filename"`
	Error    string `json:"error,omitempty"`
}

// ImageResult carries the stored image stream and metadata for download.
// The caller must close Body.
type ImageResult struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	Filename      string
}
