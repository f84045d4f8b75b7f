// Package adapters provides the gorm repository and seed data for the directory.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"careerinn/internal/feature/directory/domain/entity"
	"careerinn/internal/feature/directory/usecase"
)

type contentGorm struct {
	db *gorm.DB
}

var _ usecase.ContentRepository = (*contentGorm)(nil)

// NewContentGorm returns a content repository backed by db.
func NewContentGorm(db *gorm.DB) *contentGorm {
	return &contentGorm{db: db}
}

func (r *contentGorm) ListColleges(ctx context.Context, q usecase.CollegeQuery) ([]entity.College, error) {
	tx := r.db.WithContext(ctx).Model(&entity.College{})
	if q.Track != "" {
		tx = tx.Where("track = ?", q.Track)
	}
	if q.Fees != nil {
		if q.Fees.Min > 0 {
			tx = tx.Where("fees >= ?", q.Fees.Min)
		}
		if q.Fees.Max > 0 {
			tx = tx.Where("fees <= ?", q.Fees.Max)
		}
	}
	if q.MinRating > 0 {
		tx = tx.Where("rating >= ?", q.MinRating)
	}

	var out []entity.College
	if err := tx.Order("rating DESC").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentGorm) ListCourses(ctx context.Context, track string) ([]entity.Course, error) {
	var out []entity.Course
	tx := r.db.WithContext(ctx)
	if track != "" {
		tx = tx.Where("track = ?", track)
	}
	if err := tx.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentGorm) ListJobs(ctx context.Context, track string) ([]entity.Job, error) {
	var out []entity.Job
	tx := r.db.WithContext(ctx)
	if track != "" {
		tx = tx.Where("track = ?", track)
	}
	if err := tx.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentGorm) ListMentors(ctx context.Context) ([]entity.Mentor, error) {
	var out []entity.Mentor
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentGorm) ListPapers(ctx context.Context) ([]entity.PrevPaper, error) {
	var out []entity.PrevPaper
	if err := r.db.WithContext(ctx).Order("year DESC").Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListMockInterviews includes track-less resources for every track.
func (r *contentGorm) ListMockInterviews(ctx context.Context, track string) ([]entity.MockInterview, error) {
	var out []entity.MockInterview
	tx := r.db.WithContext(ctx)
	if track != "" {
		tx = tx.Where("track = ? OR track = ''", track)
	}
	if err := tx.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentGorm) CreatePaper(ctx context.Context, p *entity.PrevPaper) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *contentGorm) CreateMockInterview(ctx context.Context, m *entity.MockInterview) error {
	return r.db.WithContext(ctx).Create(m).Error
}
