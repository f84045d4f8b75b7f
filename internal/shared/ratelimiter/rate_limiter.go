// Package ratelimiter paces outbound calls to a fixed number per interval.
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter blocks callers once the per-interval budget is used up.
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter allows limit calls per interval and is safe for concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a limiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Wait reserves a slot, sleeping until the next window when the budget is exhausted.
// It returns ctx.Err() if the context ends first.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count <= rl.limit {
		rl.mu.Unlock()
		return nil
	}

	// Budget exhausted: this caller takes the first slot of the next window.
	sleep := rl.interval - now.Sub(rl.lastReset)
	rl.count = 1
	rl.lastReset = rl.lastReset.Add(rl.interval)
	rl.mu.Unlock()

	if sleep <= 0 {
		return nil
	}
	slog.Warn("rate limit reached, waiting", "limit", rl.limit, "wait", sleep)

	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
