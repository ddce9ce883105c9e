package llm

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
	"liyu1981.xyz/smart-home-service/pkg/common"
)

const defaultModel = "gemini-2.5-flash"

// Gemini implements home.Generator against Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context) (*Gemini, error) {
	apiKey := os.Getenv(common.EnvKeyGeminiApiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s environment variable is required", common.EnvKeyGeminiApiKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  defaultModel,
	}, nil
}

// Generate performs one blocking content generation call. There is no retry
// here on purpose: a failed round-trip is terminal for the request.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
