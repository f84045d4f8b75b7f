package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"careerinn/internal/feature/entitlement/domain/entity"
)

// SubscriptionRepository persists Subscription rows.
type SubscriptionRepository interface {
	// FindByUserID returns ErrNotFound when the user never subscribed.
	FindByUserID(ctx context.Context, userID uint) (*entity.Subscription, error)

	// Activate upserts the user's row to active=true.
	Activate(ctx context.Context, userID uint, at time.Time) error
}

// UsageRepository persists AiUsage rows.
type UsageRepository interface {
	// FindByUserID returns ErrNotFound when the user never chatted.
	FindByUserID(ctx context.Context, userID uint) (*entity.AiUsage, error)

	// MarkUsed upserts the user's row to used=1.
	MarkUsed(ctx context.Context, userID uint) error
}

type entitlementUsecase struct {
	subs  SubscriptionRepository
	usage UsageRepository
	now   func() time.Time
}

// NewEntitlementUsecase creates the entitlement service.
func NewEntitlementUsecase(subs SubscriptionRepository, usage UsageRepository) *entitlementUsecase {
	return &entitlementUsecase{subs: subs, usage: usage, now: time.Now}
}

// IsSubscribed reports whether the user has an active subscription.
// Anonymous users (ID 0) are never subscribed and store errors read as false.
func (u *entitlementUsecase) IsSubscribed(ctx context.Context, userID uint) bool {
	if userID == 0 {
		return false
	}
	sub, err := u.subs.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("subscription lookup failed", "error", err, "user_id", userID)
		}
		return false
	}
	return sub.Active
}

// ActivateSubscription marks the user subscribed. Calling it again is a no-op.
func (u *entitlementUsecase) ActivateSubscription(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if err := u.subs.Activate(ctx, userID, u.now()); err != nil {
		return fmt.Errorf("failed to activate subscription: %w", err)
	}
	slog.Info("subscription activated", "user_id", userID)
	return nil
}

// HasFreeQuotaRemaining reports whether the user still has the free AI chat.
func (u *entitlementUsecase) HasFreeQuotaRemaining(ctx context.Context, userID uint) (bool, error) {
	if userID == 0 {
		return false, ErrUnauthenticated
	}
	usage, err := u.usage.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to read ai usage: %w", err)
	}
	return !usage.Consumed(), nil
}

// ConsumeFreeQuota spends the free AI chat. It cannot be undone.
func (u *entitlementUsecase) ConsumeFreeQuota(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if err := u.usage.MarkUsed(ctx, userID); err != nil {
		return fmt.Errorf("failed to record ai usage: %w", err)
	}
	return nil
}
