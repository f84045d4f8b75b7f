package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"careerinn/internal/feature/auth/domain/entity"
	"careerinn/internal/feature/auth/usecase"
)

// sessionGorm stores sessions in the relational database when Redis is not configured.
type sessionGorm struct {
	db  *gorm.DB
	ttl time.Duration
}

var _ usecase.SessionRepository = (*sessionGorm)(nil)

// NewSessionGorm returns a SQL-backed session store; Save extends expiry by ttl.
func NewSessionGorm(db *gorm.DB, ttl time.Duration) *sessionGorm {
	return &sessionGorm{db: db, ttl: ttl}
}

// Create persists a new session.
func (r *sessionGorm) Create(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Create(SessionModelFromEntity(session)).Error
}

// FindByID returns usecase.ErrSessionNotFound for missing or expired sessions.
func (r *sessionGorm) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	var m SessionModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Save overwrites the session and slides its expiry.
func (r *sessionGorm) Save(ctx context.Context, session *entity.Session) error {
	session.ExpiresAt = time.Now().Add(r.ttl)
	return r.db.WithContext(ctx).Save(SessionModelFromEntity(session)).Error
}

// Delete removes the session.
func (r *sessionGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&SessionModel{}).Error
}

// DeleteExpired removes all expired sessions and returns how many were deleted.
func (r *sessionGorm) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&SessionModel{})
	return result.RowsAffected, result.Error
}
