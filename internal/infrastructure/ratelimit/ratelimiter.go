package ratelimit

import "context"

// Limits are the per-window ceilings applied to one key. A zero value
// disables that window.
type Limits struct {
	PerMinute int
	PerHour   int
}

// RateLimiter throttles the public submission endpoint per client key.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	Reset(ctx context.Context, key string) error
}
