package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerinn/internal/feature/profile/domain/entity"
)

type mockProfileRepo struct {
	FindByUserIDFunc func(ctx context.Context, userID uint) (*entity.Profile, error)
	UpsertFunc       func(ctx context.Context, p *entity.Profile) error
}

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, ErrNotFound
}

func (m *mockProfileRepo) Upsert(ctx context.Context, p *entity.Profile) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, p)
	}
	return nil
}

func TestProfileUsecase_Get(t *testing.T) {
	tests := []struct {
		name    string
		userID  uint
		find    func(ctx context.Context, userID uint) (*entity.Profile, error)
		want    *entity.Profile
		wantErr error
	}{
		{
			name:   "existing profile",
			userID: 3,
			find: func(context.Context, uint) (*entity.Profile, error) {
				return &entity.Profile{ID: 1, UserID: 3, SkillsText: "Go"}, nil
			},
			want: &entity.Profile{ID: 1, UserID: 3, SkillsText: "Go"},
		},
		{
			name:   "missing profile yields an empty one",
			userID: 3,
			want:   &entity.Profile{UserID: 3},
		},
		{
			name:    "anonymous",
			userID:  0,
			wantErr: ErrUnauthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewProfileUsecase(&mockProfileRepo{FindByUserIDFunc: tt.find})
			got, err := uc.Get(context.Background(), tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("store error is wrapped", func(t *testing.T) {
		boom := errors.New("db down")
		uc := NewProfileUsecase(&mockProfileRepo{
			FindByUserIDFunc: func(context.Context, uint) (*entity.Profile, error) { return nil, boom },
		})
		_, err := uc.Get(context.Background(), 3)
		assert.ErrorIs(t, err, boom)
	})
}

func TestProfileUsecase_Update(t *testing.T) {
	t.Run("trims and saves", func(t *testing.T) {
		var saved *entity.Profile
		uc := NewProfileUsecase(&mockProfileRepo{
			UpsertFunc: func(_ context.Context, p *entity.Profile) error {
				saved = p
				return nil
			},
		})

		_, err := uc.Update(context.Background(), 3, ProfileInput{SkillsText: " cooking ", TargetRoles: "Chef", SelfRating: 4})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, uint(3), saved.UserID)
		assert.Equal(t, "cooking", saved.SkillsText)
		assert.Equal(t, 4, saved.SelfRating)
	})

	for _, rating := range []int{-1, 6} {
		t.Run("rejects rating out of range", func(t *testing.T) {
			uc := NewProfileUsecase(&mockProfileRepo{
				UpsertFunc: func(context.Context, *entity.Profile) error {
					t.Fatal("must not save")
					return nil
				},
			})
			_, err := uc.Update(context.Background(), 3, ProfileInput{SelfRating: rating})
			assert.ErrorIs(t, err, ErrInvalidRating)
		})
	}

	t.Run("boundaries are accepted", func(t *testing.T) {
		uc := NewProfileUsecase(&mockProfileRepo{})
		for _, rating := range []int{0, 5} {
			_, err := uc.Update(context.Background(), 3, ProfileInput{SelfRating: rating})
			assert.NoError(t, err)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := NewProfileUsecase(&mockProfileRepo{}).Update(context.Background(), 0, ProfileInput{})
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
