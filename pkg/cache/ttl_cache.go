package cache

import (
	"sync"
	"time"
)

// TTLCache remembers keys for a limited time. Only key presence is tracked.
// It is process local; every replica keeps its own view.
type TTLCache struct {
	mu   sync.Mutex
	data map[string]time.Time // key -> expiry
	now  func() time.Time
}

func NewTTLCache() *TTLCache {
	return NewTTLCacheWithClock(time.Now)
}

func NewTTLCacheWithClock(now func() time.Time) *TTLCache {
	if now == nil {
		now = time.Now
	}

	return &TTLCache{
		data: make(map[string]time.Time),
		now:  now,
	}
}

// UseOnce marks key and reports whether it had already been marked within
// its TTL. The check and the mark happen under one lock.
func (c *TTLCache) UseOnce(key string, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.alive(key) {
		return true
	}

	c.prune()
	c.data[key] = c.now().Add(ttl)

	return false
}

func (c *TTLCache) alive(key string) bool {
	exp, ok := c.data[key]
	if !ok {
		return false
	}

	if c.now().After(exp) {
		delete(c.data, key)

		return false
	}

	return true
}

func (c *TTLCache) prune() {
	now := c.now()

	for key, exp := range c.data {
		if now.After(exp) {
			delete(c.data, key)
		}
	}
}
