// Package adapters provides the gorm profile repository.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"careerinn/internal/feature/profile/domain/entity"
	"careerinn/internal/feature/profile/usecase"
)

type profileGorm struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileGorm returns a profile repository backed by db.
func NewProfileGorm(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

func (r *profileGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileGorm) Upsert(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"skills_text", "target_roles", "resume_link", "notes", "self_rating", "updated_at"}),
	}).Create(p).Error
}
