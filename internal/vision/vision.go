// Package vision sends waste item images to a hosted vision model and returns
// the model's category label. Providers share a prompt that requests strict
// JSON; output that cannot be parsed is passed through as raw label text for
// the caller to normalize.
package vision

import (
	"context"
	"errors"

	"github.com/jazs69/ai-waste-sorter/pkg/formatting"
)

// Usage contains token usage and estimated cost for a single model call.
type Usage struct {
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	TotalTokens  int64   `json:"total_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}

// Result is the outcome of a classification call. Label is the model's
// category answer, which may be arbitrary text when the model ignored the
// response format instructions.
type Result struct {
	Label     string
	Rationale string
	Provider  string
	Model     string
	Usage     Usage
}

// Analyzer classifies a waste item image into a category label.
type Analyzer interface {
	Classify(ctx context.Context, imageData []byte, mimeType string) (*Result, error)
}

// ErrNoResponse indicates the provider returned an empty candidate set.
var ErrNoResponse = errors.New("no response from vision model")

const classifyPrompt = `You are a waste sorting assistant. Look at the image and classify the waste item into exactly one of these categories:

- Plastic
- Paper
- Cardboard
- Glass
- Metal

Respond in JSON format with these fields:
- category: one of the five category names above, exactly as written
- rationale: one short sentence explaining the classification

Example response:
{"category": "Glass", "rationale": "The item is a transparent glass bottle."}

If the item does not fit any category, use the closest match and say so in the rationale. Respond ONLY with the JSON object, no markdown or other text.`

type classifyResponse struct {
	Category  string `json:"category"`
	Rationale string `json:"rationale"`
}

// interpret extracts the label and rationale from raw model output. Malformed
// output keeps the raw text as the label so keyword normalization downstream
// still has something to work with.
func interpret(text string) (label, rationale string) {
	parsed, err := formatting.Parse[classifyResponse](text)
	if err != nil || parsed.Category == "" {
		return text, ""
	}
	return parsed.Category, parsed.Rationale
}
