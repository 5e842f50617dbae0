// Package ratelimiter limits how often an operation may run per key.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"job_hunter/internal/api"
)

// RateLimiter counts operations per key in fixed windows. It is safe for
// concurrent use by request handlers.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // allowed operations per window
	interval  time.Duration // window size
	windows   map[string]*window
	lastPrune time.Time
}

type window struct {
	count int
	start time.Time
}

// NewRateLimiter creates a limiter allowing limit operations per interval
// for each key.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		lastPrune: time.Now(),
	}
}

// Allow reports whether another operation for key fits in the current window.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Expired windows never get revisited by one-off clients, so sweep
	// them out at most once per interval to keep the map bounded.
	if now.Sub(rl.lastPrune) >= rl.interval {
		for k, w := range rl.windows {
			if now.Sub(w.start) >= rl.interval {
				delete(rl.windows, k)
			}
		}
		rl.lastPrune = now
	}

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.interval {
		rl.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// Middleware throttles requests per client IP, responding 429 when the
// window is exhausted. Used on login and forgot-password to slow down
// credential guessing.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
