package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// rateLimiter throttles location reports per driver. A report is accepted
// only when at least interval has passed since the previous accepted report
// from the same driver.
type rateLimiter struct {
	interval time.Duration

	mu   sync.Mutex
	last map[uuid.UUID]time.Time
}

func newRateLimiter(interval time.Duration) *rateLimiter {
	return &rateLimiter{
		interval: interval,
		last:     make(map[uuid.UUID]time.Time),
	}
}

// Allow reports whether the driver may submit an update at now, and records
// the acceptance when it may.
func (l *rateLimiter) Allow(driverID uuid.UUID, now time.Time) bool {
	if l.interval <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if prev, ok := l.last[driverID]; ok && now.Sub(prev) < l.interval {
		return false
	}
	l.last[driverID] = now
	return true
}
