package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_SweepEvictsIdleKeys(t *testing.T) {
	rl := &rateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     5,
		lastSweep: time.Now().Add(-2 * sweepInterval),
	}
	rl.requests["stale"] = []time.Time{time.Now().Add(-2 * time.Minute)}
	rl.requests["fresh"] = []time.Time{time.Now()}

	if !rl.allow("fresh") {
		t.Fatal("request under the limit must be allowed")
	}
	if _, ok := rl.requests["stale"]; ok {
		t.Fatal("idle key must be evicted by the sweep")
	}
	if got := len(rl.requests["fresh"]); got != 2 {
		t.Fatalf("expected 2 recorded requests, got %d", got)
	}
}
