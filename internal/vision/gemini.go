package vision

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini 2.5 Flash pricing (per million tokens)
const (
	geminiInputPricePerMillion  = 0.30
	geminiOutputPricePerMillion = 2.50
)

// GeminiAnalyzer classifies images using Google's Gemini API.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// NewGeminiAnalyzer creates a Gemini-backed analyzer with the given API key
// and model. An empty model selects DefaultGeminiModel.
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiAnalyzer{client: client, model: model}, nil
}

// Classify implements Analyzer using an inline image part plus the shared prompt.
func (g *GeminiAnalyzer) Classify(ctx context.Context, imageData []byte, mimeType string) (*Result, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(classifyPrompt),
		{InlineData: &genai.Blob{Data: imageData, MIMEType: mimeType}},
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoResponse
	}

	label, rationale := interpret(resp.Text())

	result := &Result{
		Label:     label,
		Rationale: rationale,
		Provider:  "gemini",
		Model:     g.model,
	}

	if resp.UsageMetadata != nil {
		result.Usage = Usage{
			InputTokens:  int64(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(resp.UsageMetadata.TotalTokenCount),
		}
		result.Usage.CostUSD = cost(
			result.Usage.InputTokens,
			result.Usage.OutputTokens,
			geminiInputPricePerMillion,
			geminiOutputPricePerMillion,
		)
	}

	return result, nil
}

func cost(inputTokens, outputTokens int64, inputPrice, outputPrice float64) float64 {
	return float64(inputTokens)/1_000_000*inputPrice +
		float64(outputTokens)/1_000_000*outputPrice
}
