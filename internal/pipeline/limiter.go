package pipeline

// limiter.go serializes pipeline runs.
//
// Each run truncates and rebuilds every table, so two runs must never
// overlap. The limiter is a one-slot semaphore; a caller that cannot take
// the slot within maxWait fails with ErrBusy. WaitForDrain blocks until the
// running load finishes, for graceful shutdown.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrBusy is returned when another run holds the slot past the wait timeout.
// Clients should retry after the current load completes.
var ErrBusy = errors.New("another load is in progress, please try again later")

// DefaultMaxWaitTime is how long to wait for the slot before rejecting.
const DefaultMaxWaitTime = 30 * time.Second

// Limiter admits one run at a time.
type Limiter struct {
	semaphore chan struct{}
	maxWait   time.Duration

	mu     sync.RWMutex
	active int
}

// NewLimiter creates a single-slot limiter. Callers that cannot acquire the
// slot within maxWait receive ErrBusy.
func NewLimiter(maxWait time.Duration) *Limiter {
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}

	return &Limiter{
		semaphore: make(chan struct{}, 1),
		maxWait:   maxWait,
	}
}

// Acquire waits for the slot.
// Returns nil on success, ErrBusy if the wait times out.
// The caller MUST call Release() when the run completes (use defer).
func (l *Limiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil

	case <-waitCtx.Done():
		// Check if original context was cancelled vs timeout
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrBusy
	}
}

// Release frees the slot.
// Must be called exactly once for each successful Acquire.
func (l *Limiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	<-l.semaphore
}

// Running reports whether a run holds the slot.
func (l *Limiter) Running() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active > 0
}

// WaitForDrain blocks until the active run completes or ctx is cancelled.
func (l *Limiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if !l.Running() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
