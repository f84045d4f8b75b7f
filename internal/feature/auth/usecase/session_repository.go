package usecase

import (
	"context"

	"careerinn/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the TTL-bounded session store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID returns the session or ErrSessionNotFound when missing or expired.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Save overwrites the session and slides its expiry.
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes the session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
