package usecase

import (
	"context"
	"fmt"
	"strings"

	"careerinn/internal/feature/directory/domain/entity"
)

// GlobalMatchMinRating is the rating floor for colleges shown on the global match page.
const GlobalMatchMinRating = 4.5

// ContentRepository reads and writes directory content.
type ContentRepository interface {
	ListColleges(ctx context.Context, q CollegeQuery) ([]entity.College, error)
	ListCourses(ctx context.Context, track string) ([]entity.Course, error)
	ListJobs(ctx context.Context, track string) ([]entity.Job, error)
	ListMentors(ctx context.Context) ([]entity.Mentor, error)
	ListPapers(ctx context.Context) ([]entity.PrevPaper, error)
	ListMockInterviews(ctx context.Context, track string) ([]entity.MockInterview, error)
	CreatePaper(ctx context.Context, p *entity.PrevPaper) error
	CreateMockInterview(ctx context.Context, m *entity.MockInterview) error
}

// GlobalMatch is the subscriber-only shortlist of top colleges and jobs.
type GlobalMatch struct {
	Colleges []entity.College
	Jobs     []entity.Job
}

type directoryUsecase struct {
	repo ContentRepository
}

// NewDirectoryUsecase creates the directory service.
func NewDirectoryUsecase(repo ContentRepository) *directoryUsecase {
	return &directoryUsecase{repo: repo}
}

// ListColleges returns colleges matching f, highest rated first.
func (u *directoryUsecase) ListColleges(ctx context.Context, f CollegeFilter) ([]entity.College, error) {
	fees, err := BudgetRange(f.Budget)
	if err != nil {
		return nil, err
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return nil, fmt.Errorf("%w: rating %v out of range", ErrInvalidFilter, f.MinRating)
	}
	return u.repo.ListColleges(ctx, CollegeQuery{Track: f.Track, Fees: fees, MinRating: f.MinRating})
}

func (u *directoryUsecase) ListCourses(ctx context.Context, track string) ([]entity.Course, error) {
	return u.repo.ListCourses(ctx, track)
}

func (u *directoryUsecase) ListJobs(ctx context.Context, track string) ([]entity.Job, error) {
	return u.repo.ListJobs(ctx, track)
}

func (u *directoryUsecase) ListMentors(ctx context.Context) ([]entity.Mentor, error) {
	return u.repo.ListMentors(ctx)
}

// ListPapers returns papers, newest year first.
func (u *directoryUsecase) ListPapers(ctx context.Context) ([]entity.PrevPaper, error) {
	return u.repo.ListPapers(ctx)
}

// ListMockInterviews returns resources for track, or all when track is empty.
func (u *directoryUsecase) ListMockInterviews(ctx context.Context, track string) ([]entity.MockInterview, error) {
	return u.repo.ListMockInterviews(ctx, track)
}

// GlobalMatch returns colleges rated at least GlobalMatchMinRating and jobs, optionally by track.
func (u *directoryUsecase) GlobalMatch(ctx context.Context, track string) (*GlobalMatch, error) {
	colleges, err := u.repo.ListColleges(ctx, CollegeQuery{Track: track, MinRating: GlobalMatchMinRating})
	if err != nil {
		return nil, fmt.Errorf("failed to list colleges: %w", err)
	}
	jobs, err := u.repo.ListJobs(ctx, track)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return &GlobalMatch{Colleges: colleges, Jobs: jobs}, nil
}

// AddPaper stores a paper. A title is required, plus a link or an uploaded file URL.
func (u *directoryUsecase) AddPaper(ctx context.Context, title, year, link string) (*entity.PrevPaper, error) {
	p := &entity.PrevPaper{
		Title: strings.TrimSpace(title),
		Year:  strings.TrimSpace(year),
		Link:  strings.TrimSpace(link),
	}
	if p.Title == "" || p.Link == "" {
		return nil, ErrInvalidPaper
	}
	if err := u.repo.CreatePaper(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save paper: %w", err)
	}
	return p, nil
}

// AddMockInterview stores a resource. Title and link are required; an unknown track is cleared.
func (u *directoryUsecase) AddMockInterview(ctx context.Context, title, description, link, track string) (*entity.MockInterview, error) {
	m := &entity.MockInterview{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Link:        strings.TrimSpace(link),
		Track:       strings.TrimSpace(track),
	}
	if m.Title == "" || m.Link == "" {
		return nil, ErrInvalidMockInterview
	}
	if !entity.ValidTrack(m.Track) {
		m.Track = ""
	}
	if err := u.repo.CreateMockInterview(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save mock interview: %w", err)
	}
	return m, nil
}
