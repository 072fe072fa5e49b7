package insight

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"destinex/internal/models"
)

// OpenAIProvider asks a chat model for the insight line and falls back to the
// rule-based provider on any failure, so search never depends on the API.
type OpenAIProvider struct {
	client   *openai.Client
	fallback Provider
}

func NewOpenAIProvider(apiKey string) Provider {
	return &OpenAIProvider{
		client:   openai.NewClient(apiKey),
		fallback: NewRuleBased(),
	}
}

func (p *OpenAIProvider) Insight(ctx context.Context, place models.Place, category models.CategoryTag) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     openai.GPT4oMini,
		MaxTokens: 60,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write one short, concrete travel tip. One sentence, no preamble.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: insightPrompt(place, category),
			},
		},
	})
	if err != nil {
		log.Printf("OpenAI insight failed for %q: %v", place.Name, err)
		return p.fallback.Insight(ctx, place, category)
	}
	if len(resp.Choices) == 0 {
		return p.fallback.Insight(ctx, place, category)
	}

	line := strings.TrimSpace(resp.Choices[0].Message.Content)
	if line == "" {
		return p.fallback.Insight(ctx, place, category)
	}
	return line, nil
}

func insightPrompt(place models.Place, category models.CategoryTag) string {
	singular := strings.TrimSuffix(string(category), "s")
	return fmt.Sprintf("Write a one-sentence visitor insight for the %s %q.", singular, place.Name)
}
