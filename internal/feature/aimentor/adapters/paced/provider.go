// Package paced throttles a CompletionProvider with the shared rate limiter.
package paced

import (
	"context"
	"fmt"

	"careerinn/internal/feature/aimentor/usecase"
	"careerinn/internal/feature/auth/domain/entity"
	"careerinn/internal/shared/ratelimiter"
)

// Provider waits for a limiter slot before each completion.
type Provider struct {
	next    usecase.CompletionProvider
	limiter ratelimiter.Limiter
}

var _ usecase.CompletionProvider = (*Provider)(nil)

// New wraps next so that calls go through limiter.
func New(next usecase.CompletionProvider, limiter ratelimiter.Limiter) *Provider {
	return &Provider{next: next, limiter: limiter}
}

// Complete blocks on the limiter, then delegates.
func (p *Provider) Complete(ctx context.Context, systemPrompt string, history []entity.ChatMessage) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return p.next.Complete(ctx, systemPrompt, history)
}
