package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// sweepInterval bounds how often the limiter prunes idle keys.
const sweepInterval = 5 * time.Minute

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// RequestsPerMinute is the maximum number of requests per minute per key.
	RequestsPerMinute int
	// KeyFunc extracts the rate limit key from a request. Defaults to client IP.
	KeyFunc func(*gin.Context) string
}

// RateLimit returns a Gin middleware applying per-key sliding-window limiting.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}

	rl := &rateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     cfg.RequestsPerMinute,
		lastSweep: time.Now(),
	}

	return func(c *gin.Context) {
		if !rl.allow(cfg.KeyFunc(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

type rateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	limit     int
	lastSweep time.Time
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	// Pruning piggybacks on request handling. No background goroutine
	// means nothing leaks when a limiter is constructed per-test.
	if now.Sub(rl.lastSweep) >= sweepInterval {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	valid := filterByTime(rl.requests[key], cutoff)
	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}
	rl.requests[key] = append(valid, now)
	return true
}

func (rl *rateLimiter) sweep(cutoff time.Time) {
	for key, times := range rl.requests {
		valid := filterByTime(times, cutoff)
		if len(valid) == 0 {
			delete(rl.requests, key)
		} else {
			rl.requests[key] = valid
		}
	}
}

func filterByTime(times []time.Time, cutoff time.Time) []time.Time {
	var result []time.Time
	for _, t := range times {
		if t.After(cutoff) {
			result = append(result, t)
		}
	}
	return result
}
