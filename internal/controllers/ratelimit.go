package controllers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window in-memory limiter keyed by client IP.
// It protects the login endpoint against credential guessing.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*windowEntry
	limit    int
	window   time.Duration
}

type windowEntry struct {
	count         int
	windowExpires time.Time
}

// NewRateLimiter returns a limiter allowing limit requests per window
// for each client IP.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts: make(map[string]*windowEntry),
		limit:    limit,
		window:   window,
	}
}

// Allow records a request from the given key and reports whether it is
// within the limit.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, ok := rl.attempts[key]
	if !ok || now.After(entry.windowExpires) {
		// Starting a new window is a good moment to drop every lapsed
		// entry, otherwise the map grows with each IP ever seen.
		rl.evictExpired(now)

		rl.attempts[key] = &windowEntry{count: 1, windowExpires: now.Add(rl.window)}
		return true
	}

	entry.count++
	return entry.count <= rl.limit
}

// evictExpired removes all entries whose window has lapsed. The caller
// must hold the mutex.
func (rl *RateLimiter) evictExpired(now time.Time) {
	for key, entry := range rl.attempts {
		if now.After(entry.windowExpires) {
			delete(rl.attempts, key)
		}
	}
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httpMessage{Message: "too many requests, try again later"})
			return
		}
		c.Next()
	}
}
