// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "careerinn/internal/feature/auth/adapters"
	"careerinn/internal/feature/auth/usecase"
	"careerinn/internal/platform/session"
)

const sessionKeyPrefix = "session"

// NewSessionRepository creates a SessionRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the sessions table.
func NewSessionRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.SessionRepository {
	if rdb != nil {
		return session.NewSessionRedis(rdb, sessionKeyPrefix, ttl)
	}
	return authadapters.NewSessionGorm(db, ttl)
}
