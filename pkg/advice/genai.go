package advice

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// GenAI generates advice with the Gemini API.
type GenAI struct {
	client *genai.Client
	model  string
}

// NewGenAI creates a client. An empty apiKey yields ErrDisabled.
func NewGenAI(ctx context.Context, apiKey, model string) (*GenAI, error) {
	if apiKey == "" {
		return nil, ErrDisabled
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("advice: failed to create GenAI client: %w", err)
	}
	return &GenAI{client: client, model: model}, nil
}

// Generate implements Generator.
func (g *GenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 256,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
