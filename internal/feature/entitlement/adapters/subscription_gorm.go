// Package adapters provides gorm repositories for subscriptions and AI usage.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"careerinn/internal/feature/entitlement/domain/entity"
	"careerinn/internal/feature/entitlement/usecase"
)

type subscriptionGorm struct {
	db *gorm.DB
}

var _ usecase.SubscriptionRepository = (*subscriptionGorm)(nil)

// NewSubscriptionGorm returns a subscription repository backed by db.
func NewSubscriptionGorm(db *gorm.DB) *subscriptionGorm {
	return &subscriptionGorm{db: db}
}

func (r *subscriptionGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Subscription, error) {
	var s entity.Subscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Activate inserts or updates the user's single row in one statement.
func (r *subscriptionGorm) Activate(ctx context.Context, userID uint, at time.Time) error {
	s := entity.Subscription{UserID: userID, Active: true, ActivatedAt: &at}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"active":       true,
			"activated_at": at,
			"updated_at":   at,
		}),
	}).Create(&s).Error
}
