package insight

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"destinex/internal/models"
)

// GeminiProvider is the free-tier alternative to the OpenAI provider. Same
// contract: best effort, rule-based fallback on any error.
type GeminiProvider struct {
	client   *genai.Client
	model    string
	fallback Provider
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:   client,
		model:    model,
		fallback: NewRuleBased(),
	}, nil
}

func (p *GeminiProvider) Insight(ctx context.Context, place models.Place, category models.CategoryTag) (string, error) {
	gm := p.client.GenerativeModel(p.model)
	resp, err := gm.GenerateContent(ctx, genai.Text(insightPrompt(place, category)))
	if err != nil {
		log.Printf("Gemini insight failed for %q: %v", place.Name, err)
		return p.fallback.Insight(ctx, place, category)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return p.fallback.Insight(ctx, place, category)
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			line := strings.TrimSpace(string(text))
			if line != "" {
				return line, nil
			}
		}
	}
	return p.fallback.Insight(ctx, place, category)
}
