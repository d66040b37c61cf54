package ratelimit

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Limiter is a fixed-window request counter keyed by client identifier,
// used on the unauthenticated public endpoints. Counters expire with the
// window, so an idle client resets automatically.
type Limiter struct {
	counters *cache.Cache
	limit    int
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		counters: cache.New(window, 2*window),
		limit:    limit,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(key string) bool {
	if err := l.counters.Add(key, 1, cache.DefaultExpiration); err == nil {
		return l.limit >= 1
	}
	count, err := l.counters.IncrementInt(key, 1)
	if err != nil {
		// Entry expired between Add and Increment; start a fresh window.
		l.counters.Set(key, 1, cache.DefaultExpiration)
		return l.limit >= 1
	}
	return count <= l.limit
}
