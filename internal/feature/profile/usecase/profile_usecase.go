package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerinn/internal/feature/profile/domain/entity"
)

// ProfileRepository persists profiles keyed by user.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)
	// Upsert writes every editable field of p for p.UserID.
	Upsert(ctx context.Context, p *entity.Profile) error
}

// ProfileInput is the editable part of a profile.
type ProfileInput struct {
	SkillsText  string
	TargetRoles string
	ResumeLink  string
	Notes       string
	SelfRating  int
}

type profileUsecase struct {
	repo ProfileRepository
}

// NewProfileUsecase creates the profile service.
func NewProfileUsecase(repo ProfileRepository) *profileUsecase {
	return &profileUsecase{repo: repo}
}

// Get returns the user's profile, or an empty unsaved one when none exists.
func (u *profileUsecase) Get(ctx context.Context, userID uint) (*entity.Profile, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	p, err := u.repo.FindByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return &entity.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return p, nil
}

// Update validates and saves the profile, creating it on first save.
func (u *profileUsecase) Update(ctx context.Context, userID uint, in ProfileInput) (*entity.Profile, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if in.SelfRating < 0 || in.SelfRating > entity.MaxSelfRating {
		return nil, ErrInvalidRating
	}

	p := &entity.Profile{
		UserID:      userID,
		SkillsText:  strings.TrimSpace(in.SkillsText),
		TargetRoles: strings.TrimSpace(in.TargetRoles),
		ResumeLink:  strings.TrimSpace(in.ResumeLink),
		Notes:       strings.TrimSpace(in.Notes),
		SelfRating:  in.SelfRating,
	}
	if err := u.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return p, nil
}
