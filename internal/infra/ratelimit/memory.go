package ratelimit

import (
	"context"
	"sync"
	"time"

	"gas-booking/internal/pkg/clock"
)

// MemoryLimiter keeps the ledger in process memory. It serves single-instance
// deployments and tests; state is lost on restart.
type MemoryLimiter struct {
	mu    sync.Mutex
	clock clock.Clock
	last  map[string]time.Time
}

func NewMemoryLimiter(clk clock.Clock) *MemoryLimiter {
	return &MemoryLimiter{clock: clk, last: make(map[string]time.Time)}
}

func (l *MemoryLimiter) TryProceed(_ context.Context, key string, minInterval time.Duration) (bool, error) {
	if minInterval <= 0 {
		return true, nil
	}
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if last, ok := l.last[key]; ok && now.Sub(last) < minInterval {
		return false, nil
	}
	l.last[key] = now
	l.prune(now, minInterval)
	return true, nil
}

// prune bounds the map once it grows large, dropping entries older than a
// minute or the current interval, whichever is longer.
func (l *MemoryLimiter) prune(now time.Time, minInterval time.Duration) {
	const maxKeys = 10000
	if len(l.last) < maxKeys {
		return
	}
	horizon := minInterval
	if horizon < time.Minute {
		horizon = time.Minute
	}
	for k, t := range l.last {
		if now.Sub(t) >= horizon {
			delete(l.last, k)
		}
	}
}
