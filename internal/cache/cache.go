// Package cache contains the key/value store used for TTL-bound read models,
// cached access decisions and one-time codes.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a string key/value store with per-key expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value stored under key, or ErrMiss.
	Get(ctx context.Context, key string) (string, error)
	// SetWithExpiry stores value under key for ttl.
	SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error
	// SetIfAbsent stores value under key for ttl unless a live value is
	// already there, and reports whether it stored.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// Delete removes key and reports whether a live value was removed.
	Delete(ctx context.Context, key string) (bool, error)
}
