package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter counts events per key over a sliding window. Keys are
// arbitrary, e.g. the client IP of a form submission.
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	max     int
	now     func() time.Time
}

func NewMemoryLimiter(window time.Duration, max int) *MemoryLimiter {
	return NewMemoryLimiterWithClock(window, max, time.Now)
}

func NewMemoryLimiterWithClock(window time.Duration, max int, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}

	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		max:     max,
		now:     now,
	}
}

// Allow records an event for key unless the key is already over the limit.
func (r *MemoryLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.prune(key)

	if len(events) >= r.max {
		return false
	}

	r.history[key] = append(events, r.now())

	return true
}

// Remaining is how many more events key may record inside the window.
func (r *MemoryLimiter) Remaining(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	left := r.max - len(r.prune(key))
	if left < 0 {
		return 0
	}

	return left
}

// RetryAfter is how long until the oldest event of key leaves the window;
// zero when key is under the limit.
func (r *MemoryLimiter) RetryAfter(key string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := r.prune(key)

	if len(events) < r.max || len(events) == 0 {
		return 0
	}

	wait := r.window - r.now().Sub(events[0])
	if wait < 0 {
		return 0
	}

	return wait
}

func (r *MemoryLimiter) prune(key string) []time.Time {
	now := r.now()
	events := r.history[key]

	kept := events[:0]
	for _, t := range events {
		if now.Sub(t) <= r.window {
			kept = append(kept, t)
		}
	}

	if len(kept) == 0 {
		delete(r.history, key)

		return nil
	}

	r.history[key] = kept

	return kept
}
