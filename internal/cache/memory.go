package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryCache keeps entries in a size-bounded LRU. The LRU's own TTL is an
// upper bound; each entry also carries its own deadline checked on read.
type memoryCache struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

// NewMemory returns an in-process Cache holding at most size entries,
// none of which outlives maxTTL.
func NewMemory(size int, maxTTL time.Duration) Cache {
	return newMemory(size, maxTTL, time.Now)
}

func newMemory(size int, maxTTL time.Duration, now func() time.Time) *memoryCache {
	if size <= 0 {
		size = 1024
	}
	return &memoryCache{
		lru: expirable.NewLRU[string, memoryEntry](size, nil, maxTTL),
		now: now,
	}
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lru.Get(key)
	if !ok {
		return "", ErrMiss
	}
	if !m.now().Before(e.expiresAt) {
		m.lru.Remove(key)
		return "", ErrMiss
	}
	return e.value, nil
}

func (m *memoryCache) SetWithExpiry(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lru.Add(key, memoryEntry{value: value, expiresAt: m.now().Add(ttl)})
	return nil
}

func (m *memoryCache) SetIfAbsent(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.lru.Peek(key); ok && now.Before(e.expiresAt) {
		return false, nil
	}
	m.lru.Add(key, memoryEntry{value: value, expiresAt: now.Add(ttl)})
	return true, nil
}

func (m *memoryCache) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lru.Peek(key)
	if !ok {
		return false, nil
	}
	m.lru.Remove(key)
	return m.now().Before(e.expiresAt), nil
}
