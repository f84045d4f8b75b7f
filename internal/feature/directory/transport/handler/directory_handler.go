// Package handler serves the content directory pages.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"careerinn/internal/feature/directory/domain/entity"
	"careerinn/internal/feature/directory/usecase"
	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

// DirectoryUsecase is the directory behaviour the pages need.
type DirectoryUsecase interface {
	ListColleges(ctx context.Context, f usecase.CollegeFilter) ([]entity.College, error)
	ListCourses(ctx context.Context, track string) ([]entity.Course, error)
	ListJobs(ctx context.Context, track string) ([]entity.Job, error)
	ListMentors(ctx context.Context) ([]entity.Mentor, error)
	ListPapers(ctx context.Context) ([]entity.PrevPaper, error)
	ListMockInterviews(ctx context.Context, track string) ([]entity.MockInterview, error)
	GlobalMatch(ctx context.Context, track string) (*usecase.GlobalMatch, error)
	AddPaper(ctx context.Context, title, year, link string) (*entity.PrevPaper, error)
	AddMockInterview(ctx context.Context, title, description, link, track string) (*entity.MockInterview, error)
}

// EntitlementChecker reports whether a user may open subscriber-only pages.
type EntitlementChecker interface {
	IsSubscribed(ctx context.Context, userID uint) bool
}

// FileStore persists uploaded files and returns the URL they are served from.
type FileStore interface {
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

const (
	loadFailed   = "Could not load this page. Please try again."
	paperInvalid = "A title and a link or PDF are required."
)

// DirectoryHandler serves colleges, courses, jobs, papers and the subscriber-only pages.
type DirectoryHandler struct {
	dir       DirectoryUsecase
	ent       EntitlementChecker
	files     FileStore
	maxUpload int64
}

// NewDirectoryHandler creates a DirectoryHandler. maxUpload caps PDF size in bytes.
func NewDirectoryHandler(dir DirectoryUsecase, ent EntitlementChecker, files FileStore, maxUpload int64) *DirectoryHandler {
	return &DirectoryHandler{dir: dir, ent: ent, files: files, maxUpload: maxUpload}
}

// Colleges renders GET /colleges?track=&budget=&rating=.
func (h *DirectoryHandler) Colleges(c *gin.Context) {
	track, ok := h.trackOrChooser(c, "Colleges", "colleges")
	if !ok {
		return
	}

	budget := c.Query("budget")
	data := gin.H{"Title": "Colleges", "Track": track, "Budget": budget}

	var minRating float64
	if raw := strings.TrimSpace(c.Query("rating")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			data["Error"] = "Rating must be a number between 0 and 5."
			web.Render(c, "colleges.html", data)
			return
		}
		minRating = v
	}
	data["MinRating"] = minRating

	colleges, err := h.dir.ListColleges(c.Request.Context(), usecase.CollegeFilter{
		Track:     track,
		Budget:    budget,
		MinRating: minRating,
	})
	switch {
	case errors.Is(err, usecase.ErrInvalidFilter):
		data["Error"] = "Invalid filter. Pick a listed budget and a rating between 0 and 5."
	case err != nil:
		slog.Error("failed to list colleges", "error", err, "track", track)
		data["Error"] = loadFailed
	}
	data["Colleges"] = colleges
	web.Render(c, "colleges.html", data)
}

// Courses renders GET /courses?track=.
func (h *DirectoryHandler) Courses(c *gin.Context) {
	track, ok := h.trackOrChooser(c, "Courses", "courses")
	if !ok {
		return
	}
	data := gin.H{"Title": "Courses", "Track": track}
	courses, err := h.dir.ListCourses(c.Request.Context(), track)
	if err != nil {
		slog.Error("failed to list courses", "error", err, "track", track)
		data["Error"] = loadFailed
	}
	data["Courses"] = courses
	web.Render(c, "courses.html", data)
}

// Jobs renders GET /jobs?track=.
func (h *DirectoryHandler) Jobs(c *gin.Context) {
	track, ok := h.trackOrChooser(c, "Jobs", "jobs")
	if !ok {
		return
	}
	data := gin.H{"Title": "Jobs", "Track": track}
	jobs, err := h.dir.ListJobs(c.Request.Context(), track)
	if err != nil {
		slog.Error("failed to list jobs", "error", err, "track", track)
		data["Error"] = loadFailed
	}
	data["Jobs"] = jobs
	web.Render(c, "jobs.html", data)
}

// Mentorship renders GET /mentorship for subscribers.
func (h *DirectoryHandler) Mentorship(c *gin.Context) {
	if !h.unlocked(c, "Mentorship") {
		return
	}
	data := gin.H{"Title": "Mentorship"}
	mentors, err := h.dir.ListMentors(c.Request.Context())
	if err != nil {
		slog.Error("failed to list mentors", "error", err)
		data["Error"] = loadFailed
	}
	data["Mentors"] = mentors
	web.Render(c, "mentorship.html", data)
}

// MockInterviews renders GET /mock-interviews?track= for subscribers.
func (h *DirectoryHandler) MockInterviews(c *gin.Context) {
	h.renderMockInterviews(c, "")
}

// AddMockInterview handles POST /mock-interviews.
func (h *DirectoryHandler) AddMockInterview(c *gin.Context) {
	_, err := h.dir.AddMockInterview(c.Request.Context(),
		c.PostForm("title"), c.PostForm("description"), c.PostForm("link"), c.PostForm("track"))
	if err != nil {
		msg := "Title and link are required."
		if !errors.Is(err, usecase.ErrInvalidMockInterview) {
			slog.Error("failed to add mock interview", "error", err, "user_id", jwtmw.UserID(c))
			msg = "Could not save the resource. Please try again."
		}
		h.renderMockInterviews(c, msg)
		return
	}
	c.Redirect(http.StatusFound, "/mock-interviews")
}

func (h *DirectoryHandler) renderMockInterviews(c *gin.Context, errMsg string) {
	if !h.unlocked(c, "Mock interviews") {
		return
	}
	ctx := c.Request.Context()
	data := gin.H{"Title": "Mock interviews"}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	interviews, err := h.dir.ListMockInterviews(ctx, c.Query("track"))
	if err != nil {
		slog.Error("failed to list mock interviews", "error", err)
		data["Error"] = loadFailed
	}
	mentors, err := h.dir.ListMentors(ctx)
	if err != nil {
		slog.Error("failed to list mentors", "error", err)
		data["Error"] = loadFailed
	}
	data["Interviews"] = interviews
	data["Mentors"] = mentors
	web.Render(c, "mock_interviews.html", data)
}

// GlobalMatch renders GET /global-match?track= for subscribers.
func (h *DirectoryHandler) GlobalMatch(c *gin.Context) {
	if !h.unlocked(c, "Global match") {
		return
	}
	data := gin.H{"Title": "Global match"}
	match, err := h.dir.GlobalMatch(c.Request.Context(), c.Query("track"))
	if err != nil {
		slog.Error("failed to build global match", "error", err)
		data["Error"] = loadFailed
	} else {
		data["Colleges"] = match.Colleges
		data["Jobs"] = match.Jobs
	}
	web.Render(c, "global_match.html", data)
}

// PrevPapers renders GET /prev-papers.
func (h *DirectoryHandler) PrevPapers(c *gin.Context) {
	h.renderPapers(c, "")
}

// AddPaper handles POST /prev-papers with either a link or a PDF in the "pdf" field.
func (h *DirectoryHandler) AddPaper(c *gin.Context) {
	ctx := c.Request.Context()
	title := strings.TrimSpace(c.PostForm("title"))
	link := strings.TrimSpace(c.PostForm("link"))
	if title == "" {
		h.renderPapers(c, paperInvalid)
		return
	}

	var uploaded string
	file, err := c.FormFile("pdf")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		slog.Warn("failed to read uploaded paper", "error", err, "remote_addr", c.ClientIP())
		h.renderPapers(c, "Could not read the uploaded file.")
		return
	default:
		if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
			h.renderPapers(c, "Only PDF files are allowed.")
			return
		}
		if h.maxUpload > 0 && file.Size > h.maxUpload {
			h.renderPapers(c, "The PDF is too large.")
			return
		}

		f, err := file.Open()
		if err != nil {
			slog.Error("failed to open uploaded paper", "error", err)
			h.renderPapers(c, "Could not read the uploaded file.")
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Warn("failed to close uploaded paper", "error", err)
			}
		}()

		url, err := h.files.Save(ctx, ".pdf", f)
		if err != nil {
			slog.Error("failed to store uploaded paper", "error", err)
			h.renderPapers(c, "Could not save the uploaded file.")
			return
		}
		link = url
		uploaded = url
	}

	if _, err := h.dir.AddPaper(ctx, title, c.PostForm("year"), link); err != nil {
		if uploaded != "" {
			if derr := h.files.Delete(ctx, uploaded); derr != nil {
				slog.Warn("failed to remove rejected upload", "error", derr, "url", uploaded)
			}
		}
		msg := paperInvalid
		if !errors.Is(err, usecase.ErrInvalidPaper) {
			slog.Error("failed to add paper", "error", err, "user_id", jwtmw.UserID(c))
			msg = "Could not save the paper. Please try again."
		}
		h.renderPapers(c, msg)
		return
	}
	c.Redirect(http.StatusFound, "/prev-papers")
}

func (h *DirectoryHandler) renderPapers(c *gin.Context, errMsg string) {
	data := gin.H{"Title": "Previous papers"}
	papers, err := h.dir.ListPapers(c.Request.Context())
	if err != nil {
		slog.Error("failed to list papers", "error", err)
		errMsg = loadFailed
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	data["Papers"] = papers
	web.Render(c, "prev_papers.html", data)
}

// trackOrChooser returns the requested track, or renders the chooser when it is missing or unknown.
func (h *DirectoryHandler) trackOrChooser(c *gin.Context, heading, section string) (string, bool) {
	track := strings.ToLower(strings.TrimSpace(c.Query("track")))
	if entity.ValidTrack(track) {
		return track, true
	}
	web.Render(c, "track_chooser.html", gin.H{
		"Title":   heading,
		"Heading": heading,
		"Section": section,
	})
	return "", false
}

// unlocked renders the upsell page and returns false unless the user is subscribed.
func (h *DirectoryHandler) unlocked(c *gin.Context, feature string) bool {
	userID := jwtmw.UserID(c)
	if userID != 0 && h.ent.IsSubscribed(c.Request.Context(), userID) {
		return true
	}
	web.Render(c, "locked.html", gin.H{"Title": feature, "Feature": feature})
	return false
}
