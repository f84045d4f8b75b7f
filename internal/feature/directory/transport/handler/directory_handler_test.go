package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "careerinn/internal/feature/auth/domain/entity"
	"careerinn/internal/feature/directory/adapters"
	"careerinn/internal/feature/directory/domain/entity"
	"careerinn/internal/feature/directory/usecase"
	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

type mockDirectory struct {
	ListCollegesFunc       func(ctx context.Context, f usecase.CollegeFilter) ([]entity.College, error)
	ListCoursesFunc        func(ctx context.Context, track string) ([]entity.Course, error)
	ListJobsFunc           func(ctx context.Context, track string) ([]entity.Job, error)
	ListMentorsFunc        func(ctx context.Context) ([]entity.Mentor, error)
	ListPapersFunc         func(ctx context.Context) ([]entity.PrevPaper, error)
	ListMockInterviewsFunc func(ctx context.Context, track string) ([]entity.MockInterview, error)
	GlobalMatchFunc        func(ctx context.Context, track string) (*usecase.GlobalMatch, error)
	AddPaperFunc           func(ctx context.Context, title, year, link string) (*entity.PrevPaper, error)
	AddMockInterviewFunc   func(ctx context.Context, title, description, link, track string) (*entity.MockInterview, error)
	calls                  int
}

func (m *mockDirectory) ListColleges(ctx context.Context, f usecase.CollegeFilter) ([]entity.College, error) {
	m.calls++
	if m.ListCollegesFunc != nil {
		return m.ListCollegesFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockDirectory) ListCourses(ctx context.Context, track string) ([]entity.Course, error) {
	m.calls++
	if m.ListCoursesFunc != nil {
		return m.ListCoursesFunc(ctx, track)
	}
	return nil, nil
}

func (m *mockDirectory) ListJobs(ctx context.Context, track string) ([]entity.Job, error) {
	m.calls++
	if m.ListJobsFunc != nil {
		return m.ListJobsFunc(ctx, track)
	}
	return nil, nil
}

func (m *mockDirectory) ListMentors(ctx context.Context) ([]entity.Mentor, error) {
	m.calls++
	if m.ListMentorsFunc != nil {
		return m.ListMentorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockDirectory) ListPapers(ctx context.Context) ([]entity.PrevPaper, error) {
	m.calls++
	if m.ListPapersFunc != nil {
		return m.ListPapersFunc(ctx)
	}
	return nil, nil
}

func (m *mockDirectory) ListMockInterviews(ctx context.Context, track string) ([]entity.MockInterview, error) {
	m.calls++
	if m.ListMockInterviewsFunc != nil {
		return m.ListMockInterviewsFunc(ctx, track)
	}
	return nil, nil
}

func (m *mockDirectory) GlobalMatch(ctx context.Context, track string) (*usecase.GlobalMatch, error) {
	m.calls++
	if m.GlobalMatchFunc != nil {
		return m.GlobalMatchFunc(ctx, track)
	}
	return &usecase.GlobalMatch{}, nil
}

func (m *mockDirectory) AddPaper(ctx context.Context, title, year, link string) (*entity.PrevPaper, error) {
	m.calls++
	if m.AddPaperFunc != nil {
		return m.AddPaperFunc(ctx, title, year, link)
	}
	return &entity.PrevPaper{}, nil
}

func (m *mockDirectory) AddMockInterview(ctx context.Context, title, description, link, track string) (*entity.MockInterview, error) {
	m.calls++
	if m.AddMockInterviewFunc != nil {
		return m.AddMockInterviewFunc(ctx, title, description, link, track)
	}
	return &entity.MockInterview{}, nil
}

type subscribers map[uint]bool

func (s subscribers) IsSubscribed(_ context.Context, userID uint) bool { return s[userID] }

type memoryFiles struct {
	saved map[string][]byte
	err   error
}

func (f *memoryFiles) Save(_ context.Context, ext string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	url := "/uploads/file" + ext
	f.saved[url] = data
	return url, nil
}

func (f *memoryFiles) Delete(_ context.Context, url string) error {
	delete(f.saved, url)
	return nil
}

func setupRouter(dir *mockDirectory, subs subscribers, files *memoryFiles, userID uint) *gin.Engine {
	if files == nil {
		files = &memoryFiles{saved: map[string][]byte{}}
	}
	return setupRouterWithStore(dir, subs, files, userID)
}

func setupRouterWithStore(dir *mockDirectory, subs subscribers, files FileStore, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	if userID != 0 {
		r.Use(func(c *gin.Context) {
			c.Set(jwtmw.ContextSession, &authentity.Session{ID: "sid", UserID: userID, DisplayName: "Ann"})
			c.Next()
		})
	}
	h := NewDirectoryHandler(dir, subs, files, 1<<10)
	r.GET("/colleges", h.Colleges)
	r.GET("/courses", h.Courses)
	r.GET("/jobs", h.Jobs)
	r.GET("/mentorship", h.Mentorship)
	r.GET("/mock-interviews", h.MockInterviews)
	r.POST("/mock-interviews", h.AddMockInterview)
	r.GET("/global-match", h.GlobalMatch)
	r.GET("/prev-papers", h.PrevPapers)
	r.POST("/prev-papers", h.AddPaper)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func postForm(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func multipartPaper(t *testing.T, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("pdf", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/prev-papers", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestDirectoryHandler_TrackChooser(t *testing.T) {
	for _, path := range []string{"/colleges", "/courses", "/jobs", "/jobs?track=law"} {
		t.Run(path, func(t *testing.T) {
			dir := &mockDirectory{}
			w := get(setupRouter(dir, nil, nil, 0), path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Choose a track.")
		})
	}
}

func TestDirectoryHandler_Colleges(t *testing.T) {
	t.Run("passes filters and renders rows", func(t *testing.T) {
		dir := &mockDirectory{
			ListCollegesFunc: func(_ context.Context, f usecase.CollegeFilter) ([]entity.College, error) {
				assert.Equal(t, usecase.CollegeFilter{Track: entity.TrackBTech, Budget: "b2_3", MinRating: 4.5}, f)
				return []entity.College{{Name: "IIIT Hyderabad", Fees: 300000, Rating: 4.8}}, nil
			},
		}
		w := get(setupRouter(dir, nil, nil, 0), "/colleges?track=btech&budget=b2_3&rating=4.5")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "IIIT Hyderabad")
		assert.Contains(t, w.Body.String(), "₹3,00,000")
	})

	t.Run("non-numeric rating shows an inline error", func(t *testing.T) {
		dir := &mockDirectory{}
		w := get(setupRouter(dir, nil, nil, 0), "/colleges?track=btech&rating=high")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Rating must be a number")
	})

	t.Run("invalid filter shows an inline error", func(t *testing.T) {
		dir := &mockDirectory{
			ListCollegesFunc: func(context.Context, usecase.CollegeFilter) ([]entity.College, error) {
				return nil, usecase.ErrInvalidFilter
			},
		}
		w := get(setupRouter(dir, nil, nil, 0), "/colleges?track=btech&budget=huge")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid filter")
	})
}

func TestDirectoryHandler_CoursesAndJobs(t *testing.T) {
	dir := &mockDirectory{
		ListCoursesFunc: func(_ context.Context, track string) ([]entity.Course, error) {
			assert.Equal(t, entity.TrackHospitality, track)
			return []entity.Course{{Title: "Front Office Basics", VideoLink: "https://example.com/vid3"}}, nil
		},
		ListJobsFunc: func(context.Context, string) ([]entity.Job, error) {
			return nil, errors.New("db down")
		},
	}
	r := setupRouter(dir, nil, nil, 0)

	w := get(r, "/courses?track=Hospitality")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Front Office Basics")

	w = get(r, "/jobs?track=btech")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Could not load this page")
}

func TestDirectoryHandler_GatedPages(t *testing.T) {
	pages := []struct {
		path    string
		feature string
	}{
		{"/mentorship", "Mentorship"},
		{"/mock-interviews", "Mock interviews"},
		{"/global-match", "Global match"},
	}

	for _, p := range pages {
		t.Run("anonymous "+p.path, func(t *testing.T) {
			dir := &mockDirectory{}
			w := get(setupRouter(dir, subscribers{}, nil, 0), p.path)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "This section is for subscribers.")
			assert.Contains(t, w.Body.String(), p.feature)
			assert.Zero(t, dir.calls, "locked pages must not query content")
		})

		t.Run("unsubscribed "+p.path, func(t *testing.T) {
			dir := &mockDirectory{}
			w := get(setupRouter(dir, subscribers{4: false}, nil, 4), p.path)

			assert.Contains(t, w.Body.String(), "Subscribe to unlock")
		})
	}

	t.Run("subscriber sees mentors", func(t *testing.T) {
		dir := &mockDirectory{
			ListMentorsFunc: func(context.Context) ([]entity.Mentor, error) {
				return []entity.Mentor{{Name: "Anita Rao", Speciality: "Hotel Ops"}}, nil
			},
		}
		w := get(setupRouter(dir, subscribers{4: true}, nil, 4), "/mentorship")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Anita Rao")
		assert.NotContains(t, w.Body.String(), "This section is for subscribers.")
	})

	t.Run("subscriber sees global match", func(t *testing.T) {
		dir := &mockDirectory{
			GlobalMatchFunc: func(context.Context, string) (*usecase.GlobalMatch, error) {
				return &usecase.GlobalMatch{
					Colleges: []entity.College{{Name: "IIIT Hyderabad", Rating: 4.8}},
					Jobs:     []entity.Job{{Title: "Commis Chef", Company: "Marriott"}},
				}, nil
			},
		}
		w := get(setupRouter(dir, subscribers{4: true}, nil, 4), "/global-match")

		assert.Contains(t, w.Body.String(), "IIIT Hyderabad")
		assert.Contains(t, w.Body.String(), "Commis Chef at Marriott")
	})
}

func TestDirectoryHandler_AddMockInterview(t *testing.T) {
	t.Run("success redirects back", func(t *testing.T) {
		dir := &mockDirectory{
			AddMockInterviewFunc: func(_ context.Context, title, _, link, track string) (*entity.MockInterview, error) {
				assert.Equal(t, "HR round", title)
				assert.Equal(t, "https://example.com/hr", link)
				assert.Equal(t, "btech", track)
				return &entity.MockInterview{ID: 1}, nil
			},
		}
		w := postForm(setupRouter(dir, subscribers{4: true}, nil, 4), "/mock-interviews",
			url.Values{"title": {"HR round"}, "link": {"https://example.com/hr"}, "track": {"btech"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/mock-interviews", w.Header().Get("Location"))
	})

	t.Run("validation error re-renders the page", func(t *testing.T) {
		dir := &mockDirectory{
			AddMockInterviewFunc: func(context.Context, string, string, string, string) (*entity.MockInterview, error) {
				return nil, usecase.ErrInvalidMockInterview
			},
		}
		w := postForm(setupRouter(dir, subscribers{4: true}, nil, 4), "/mock-interviews", url.Values{"title": {"HR"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Title and link are required.")
	})
}

func TestDirectoryHandler_AddPaper(t *testing.T) {
	t.Run("link only", func(t *testing.T) {
		var gotLink string
		dir := &mockDirectory{
			AddPaperFunc: func(_ context.Context, title, year, link string) (*entity.PrevPaper, error) {
				assert.Equal(t, "NCHM 2023", title)
				assert.Equal(t, "2023", year)
				gotLink = link
				return &entity.PrevPaper{ID: 1}, nil
			},
		}
		w := postForm(setupRouter(dir, nil, nil, 4), "/prev-papers",
			url.Values{"title": {"NCHM 2023"}, "year": {"2023"}, "link": {"https://example.com/p"}})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/prev-papers", w.Header().Get("Location"))
		assert.Equal(t, "https://example.com/p", gotLink)
	})

	t.Run("pdf upload is stored and linked", func(t *testing.T) {
		files := &memoryFiles{saved: map[string][]byte{}}
		var gotLink string
		dir := &mockDirectory{
			AddPaperFunc: func(_ context.Context, _, _, link string) (*entity.PrevPaper, error) {
				gotLink = link
				return &entity.PrevPaper{ID: 1}, nil
			},
		}
		w := httptest.NewRecorder()
		setupRouter(dir, nil, files, 4).ServeHTTP(w,
			multipartPaper(t, map[string]string{"title": "IIIT 2022", "year": "2022"}, "paper.PDF", []byte("%PDF-1.4")))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/uploads/file.pdf", gotLink)
		assert.Equal(t, []byte("%PDF-1.4"), files.saved["/uploads/file.pdf"])
	})

	tests := []struct {
		name     string
		fileName string
		content  []byte
		files    *memoryFiles
		want     string
	}{
		{"non-pdf is rejected", "notes.txt", []byte("x"), nil, "Only PDF files are allowed."},
		{"oversized pdf is rejected", "big.pdf", bytes.Repeat([]byte("a"), 2<<10), nil, "The PDF is too large."},
		{"storage failure", "p.pdf", []byte("x"), &memoryFiles{err: errors.New("disk full")}, "Could not save the uploaded file."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := &mockDirectory{
				AddPaperFunc: func(context.Context, string, string, string) (*entity.PrevPaper, error) {
					t.Fatal("AddPaper must not be called")
					return nil, nil
				},
			}
			w := httptest.NewRecorder()
			setupRouter(dir, nil, tt.files, 4).ServeHTTP(w,
				multipartPaper(t, map[string]string{"title": "T"}, tt.fileName, tt.content))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}

	t.Run("missing title and link", func(t *testing.T) {
		dir := &mockDirectory{
			AddPaperFunc: func(context.Context, string, string, string) (*entity.PrevPaper, error) {
				return nil, usecase.ErrInvalidPaper
			},
		}
		w := postForm(setupRouter(dir, nil, nil, 4), "/prev-papers", url.Values{"year": {"2020"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "A title and a link or PDF are required.")
	})

	t.Run("blank title never stores the pdf", func(t *testing.T) {
		uploadDir := t.TempDir()
		store, err := adapters.NewDiskStore(uploadDir, "/uploads")
		require.NoError(t, err)
		dir := &mockDirectory{
			AddPaperFunc: func(context.Context, string, string, string) (*entity.PrevPaper, error) {
				t.Fatal("AddPaper must not be called")
				return nil, nil
			},
		}

		w := httptest.NewRecorder()
		setupRouterWithStore(dir, nil, store, 4).ServeHTTP(w,
			multipartPaper(t, map[string]string{"title": "  ", "year": "2024"}, "p.pdf", []byte("%PDF-1.4")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "A title and a link or PDF are required.")
		entries, err := os.ReadDir(uploadDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejected paper removes its stored pdf", func(t *testing.T) {
		uploadDir := t.TempDir()
		store, err := adapters.NewDiskStore(uploadDir, "/uploads")
		require.NoError(t, err)
		var gotLink string
		dir := &mockDirectory{
			AddPaperFunc: func(_ context.Context, _, _, link string) (*entity.PrevPaper, error) {
				gotLink = link
				return nil, errors.New("db down")
			},
		}

		w := httptest.NewRecorder()
		setupRouterWithStore(dir, nil, store, 4).ServeHTTP(w,
			multipartPaper(t, map[string]string{"title": "IIIT 2022"}, "p.pdf", []byte("%PDF-1.4")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Could not save the paper. Please try again.")
		assert.True(t, strings.HasPrefix(gotLink, "/uploads/"))
		entries, err := os.ReadDir(uploadDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestDirectoryHandler_PrevPapers(t *testing.T) {
	dir := &mockDirectory{
		ListPapersFunc: func(context.Context) ([]entity.PrevPaper, error) {
			return []entity.PrevPaper{{Title: "IIIT Sample Papers", Year: "recent", Link: "https://www.iiit.ac.in/admissions/sample-papers"}}, nil
		},
	}

	w := get(setupRouter(dir, nil, nil, 0), "/prev-papers")
	assert.Contains(t, w.Body.String(), "IIIT Sample Papers")
	assert.NotContains(t, w.Body.String(), "Add a paper")

	w = get(setupRouter(dir, nil, nil, 4), "/prev-papers")
	assert.Contains(t, w.Body.String(), "Add a paper")
}
