// Package groq calls Groq's OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"careerinn/internal/feature/aimentor/usecase"
	"careerinn/internal/feature/auth/domain/entity"
	platformhttp "careerinn/internal/platform/http"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.1-8b-instant"

	temperature = 0.7
)

// Client is a usecase.CompletionProvider backed by Groq.
type Client struct {
	api     *openai.Client
	baseURL string
	model   string
}

var _ usecase.CompletionProvider = (*Client)(nil)

// NewClient builds a Groq client. baseURL includes the /v1 prefix.
func NewClient(apiKey, model, baseURL string, timeout time.Duration) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("groq api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = platformhttp.NewHTTPClient(timeout)

	return &Client{
		api:     openai.NewClientWithConfig(cfg),
		baseURL: baseURL,
		model:   strings.TrimSpace(model),
	}, nil
}

// Complete sends the system prompt followed by the whole history and returns the first choice.
func (g *Client) Complete(ctx context.Context, systemPrompt string, history []entity.ChatMessage) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := g.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "", fmt.Errorf("groq api error: %s", apiErr.Message)
		}
		return "", fmt.Errorf("groq request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from groq api")
	}
	return resp.Choices[0].Message.Content, nil
}
