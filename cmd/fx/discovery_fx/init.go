package discovery_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"destinex/internal/discovery"
	"destinex/internal/insight"
)

var Module = fx.Provide(
	provideInsightProvider, provideClient)

func provideInsightProvider() insight.Provider {
	switch os.Getenv("INSIGHT_PROVIDER") {
	case "openai":
		return insight.NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"))
	case "gemini":
		provider, err := insight.NewGeminiProvider(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("Gemini unavailable, falling back to rule-based insights: %v", err)
			return insight.NewRuleBased()
		}
		return provider
	}
	return insight.NewRuleBased()
}

func provideClient(insights insight.Provider) discovery.ClientInterface {
	baseURL := os.Getenv("DISCOVERY_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	return discovery.NewClient(baseURL, insights)
}
