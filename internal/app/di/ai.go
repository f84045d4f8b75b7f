package di

import (
	"context"
	"log/slog"
	"time"

	"careerinn/internal/feature/aimentor/adapters/gemini"
	"careerinn/internal/feature/aimentor/adapters/groq"
	"careerinn/internal/feature/aimentor/adapters/paced"
	"careerinn/internal/feature/aimentor/usecase"
	"careerinn/internal/platform/config"
	platformhttp "careerinn/internal/platform/http"
	"careerinn/internal/shared/ratelimiter"
)

// AI provider names accepted in AI_PROVIDER.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// NewCompletionProvider picks the chat provider from cfg.
// An empty Provider selects Groq, then Gemini, by whichever key is set.
// Without a usable key it returns usecase.NullProvider.
func NewCompletionProvider(ctx context.Context, cfg config.AIConfig) usecase.CompletionProvider {
	name := cfg.Provider
	if name == "" {
		switch {
		case cfg.GroqAPIKey != "":
			name = ProviderGroq
		case cfg.GeminiAPIKey != "":
			name = ProviderGemini
		default:
			slog.Warn("no AI provider key set; AI mentor replies with a placeholder")
			return usecase.NullProvider{}
		}
	}

	var (
		provider usecase.CompletionProvider
		err      error
	)
	switch name {
	case ProviderGroq:
		provider, err = groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqBaseURL, cfg.Timeout)
	case ProviderGemini:
		provider, err = gemini.NewClient(ctx, gemini.Options{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			HTTPClient: platformhttp.NewHTTPClient(cfg.Timeout),
		})
	default:
		slog.Warn("unknown AI_PROVIDER; AI mentor replies with a placeholder", "provider", name)
		return usecase.NullProvider{}
	}
	if err != nil {
		slog.Warn("AI provider unavailable; AI mentor replies with a placeholder", "provider", name, "error", err)
		return usecase.NullProvider{}
	}

	slog.Info("AI provider configured", "provider", name, "requests_per_minute", cfg.RequestsPerMinute)
	if cfg.RequestsPerMinute > 0 {
		return paced.New(provider, ratelimiter.NewRateLimiter(cfg.RequestsPerMinute, time.Minute))
	}
	return provider
}
