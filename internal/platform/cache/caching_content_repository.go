// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"careerinn/internal/feature/directory/domain/entity"
	"careerinn/internal/feature/directory/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "content"
)

// CachingContentRepository decorates a ContentRepository with Redis read-through caching.
// Writes go to the inner repository first and then invalidate the affected listings.
type CachingContentRepository struct {
	inner     usecase.ContentRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ContentRepository = (*CachingContentRepository)(nil)

// NewCachingContentRepository wraps inner. A nil rdb disables caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "content".
func NewCachingContentRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ContentRepository, namespace string) *CachingContentRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingContentRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingContentRepository) ListColleges(ctx context.Context, q usecase.CollegeQuery) ([]entity.College, error) {
	var lo, hi int
	if q.Fees != nil {
		lo, hi = q.Fees.Min, q.Fees.Max
	}
	key := c.key("colleges", safe(q.Track), fmt.Sprintf("%d-%d", lo, hi), fmt.Sprintf("%g", q.MinRating))
	return readThrough(ctx, c, key, func() ([]entity.College, error) {
		return c.inner.ListColleges(ctx, q)
	})
}

func (c *CachingContentRepository) ListCourses(ctx context.Context, track string) ([]entity.Course, error) {
	return readThrough(ctx, c, c.key("courses", safe(track)), func() ([]entity.Course, error) {
		return c.inner.ListCourses(ctx, track)
	})
}

func (c *CachingContentRepository) ListJobs(ctx context.Context, track string) ([]entity.Job, error) {
	return readThrough(ctx, c, c.key("jobs", safe(track)), func() ([]entity.Job, error) {
		return c.inner.ListJobs(ctx, track)
	})
}

func (c *CachingContentRepository) ListMentors(ctx context.Context) ([]entity.Mentor, error) {
	return readThrough(ctx, c, c.key("mentors"), func() ([]entity.Mentor, error) {
		return c.inner.ListMentors(ctx)
	})
}

func (c *CachingContentRepository) ListPapers(ctx context.Context) ([]entity.PrevPaper, error) {
	return readThrough(ctx, c, c.key("papers"), func() ([]entity.PrevPaper, error) {
		return c.inner.ListPapers(ctx)
	})
}

func (c *CachingContentRepository) ListMockInterviews(ctx context.Context, track string) ([]entity.MockInterview, error) {
	return readThrough(ctx, c, c.key("mock_interviews", safe(track)), func() ([]entity.MockInterview, error) {
		return c.inner.ListMockInterviews(ctx, track)
	})
}

// CreatePaper stores the paper and drops the cached paper list.
func (c *CachingContentRepository) CreatePaper(ctx context.Context, p *entity.PrevPaper) error {
	if err := c.inner.CreatePaper(ctx, p); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, c.key("papers")).Err(); err != nil {
		slog.Warn("failed to invalidate paper cache", "error", err)
	}
	return nil
}

// CreateMockInterview stores the resource and drops every cached mock interview listing.
func (c *CachingContentRepository) CreateMockInterview(ctx context.Context, m *entity.MockInterview) error {
	if err := c.inner.CreateMockInterview(ctx, m); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	if err := c.deleteByPattern(ctx, c.key("mock_interviews")+":*"); err != nil {
		slog.Warn("failed to invalidate mock interview cache", "error", err)
	}
	return nil
}

// readThrough returns the cached value for key, or loads it and stores it for c.ttl.
// Cache errors are never returned; the inner repository stays the source of truth.
func readThrough[T any](ctx context.Context, c *CachingContentRepository, key string, load func() ([]T, error)) ([]T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingContentRepository) key(parts ...string) string {
	return c.namespace + ":" + strings.Join(parts, ":")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingContentRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
