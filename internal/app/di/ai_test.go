package di

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"careerinn/internal/feature/aimentor/adapters/gemini"
	"careerinn/internal/feature/aimentor/adapters/groq"
	"careerinn/internal/feature/aimentor/adapters/paced"
	"careerinn/internal/feature/aimentor/usecase"
	"careerinn/internal/platform/config"
)

func TestNewCompletionProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AIConfig
		want any
	}{
		{
			name: "no keys",
			cfg:  config.AIConfig{},
			want: usecase.NullProvider{},
		},
		{
			name: "groq key auto-selects groq",
			cfg:  config.AIConfig{GroqAPIKey: "gk", Timeout: time.Second},
			want: &groq.Client{},
		},
		{
			name: "gemini key auto-selects gemini",
			cfg:  config.AIConfig{GeminiAPIKey: "gm", Timeout: time.Second},
			want: &gemini.Client{},
		},
		{
			name: "groq preferred when both keys are set",
			cfg:  config.AIConfig{GroqAPIKey: "gk", GeminiAPIKey: "gm", Timeout: time.Second},
			want: &groq.Client{},
		},
		{
			name: "explicit gemini",
			cfg:  config.AIConfig{Provider: ProviderGemini, GroqAPIKey: "gk", GeminiAPIKey: "gm", Timeout: time.Second},
			want: &gemini.Client{},
		},
		{
			name: "explicit provider without its key",
			cfg:  config.AIConfig{Provider: ProviderGroq, GeminiAPIKey: "gm"},
			want: usecase.NullProvider{},
		},
		{
			name: "unknown provider",
			cfg:  config.AIConfig{Provider: "openai", GroqAPIKey: "gk"},
			want: usecase.NullProvider{},
		},
		{
			name: "rate limit wraps the provider",
			cfg:  config.AIConfig{GroqAPIKey: "gk", Timeout: time.Second, RequestsPerMinute: 30},
			want: &paced.Provider{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCompletionProvider(context.Background(), tt.cfg)
			assert.IsType(t, tt.want, got)
		})
	}
}
