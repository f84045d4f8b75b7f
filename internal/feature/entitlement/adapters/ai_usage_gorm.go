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

type aiUsageGorm struct {
	db *gorm.DB
}

var _ usecase.UsageRepository = (*aiUsageGorm)(nil)

// NewAiUsageGorm returns an AI usage repository backed by db.
func NewAiUsageGorm(db *gorm.DB) *aiUsageGorm {
	return &aiUsageGorm{db: db}
}

func (r *aiUsageGorm) FindByUserID(ctx context.Context, userID uint) (*entity.AiUsage, error) {
	var u entity.AiUsage
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// MarkUsed sets used=1, creating the row if needed. There is no way back to 0.
func (r *aiUsageGorm) MarkUsed(ctx context.Context, userID uint) error {
	u := entity.AiUsage{UserID: userID, Used: 1}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"used":       1,
			"updated_at": time.Now(),
		}),
	}).Create(&u).Error
}
