package provider

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter enforces a minimum spacing between outbound provider calls and
// a daily call quota. Overlapping callers queue in arrival order on the
// spacing wait, so at most one request is granted per interval system-wide.
// The quota counter is monotonic for the process lifetime; there is no
// day-boundary reset.
type RateLimiter struct {
	spacing *rate.Limiter

	mu       sync.Mutex
	calls    int
	cap      int
	lastCall time.Time
}

// NewRateLimiter creates a limiter granting one call per minInterval with a
// total budget of dailyCap calls.
func NewRateLimiter(minInterval time.Duration, dailyCap int) *RateLimiter {
	return &RateLimiter{
		spacing: rate.NewLimiter(rate.Every(minInterval), 1),
		cap:     dailyCap,
	}
}

// Acquire blocks until the minimum spacing since the previous grant has
// elapsed, then claims one call against the daily quota. Once the cap is
// reached it returns ErrQuotaExceeded without recording a call or advancing
// the last-call timestamp.
func (rl *RateLimiter) Acquire(ctx context.Context) error {
	if err := rl.spacing.Wait(ctx); err != nil {
		return err
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.calls >= rl.cap {
		return ErrQuotaExceeded
	}
	rl.calls++
	rl.lastCall = time.Now()
	return nil
}

// CallsUsed returns how many calls have been granted so far.
func (rl *RateLimiter) CallsUsed() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.calls
}

// Remaining returns how many calls are left in the budget.
func (rl *RateLimiter) Remaining() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.calls >= rl.cap {
		return 0
	}
	return rl.cap - rl.calls
}

// Exhausted reports whether the daily quota has been used up.
func (rl *RateLimiter) Exhausted() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.calls >= rl.cap
}

// LastCall returns the timestamp of the most recent granted call, zero if
// none has been granted yet.
func (rl *RateLimiter) LastCall() time.Time {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.lastCall
}
