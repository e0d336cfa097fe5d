// Package ratelimit holds the process-wide limiter that gates calls to the
// chat provider.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultLimit is the number of calls allowed inside one window.
	DefaultLimit = 30
	// DefaultWindow is the trailing interval calls are counted over.
	DefaultWindow = time.Minute
)

// Window is a sliding-window counter: it remembers the instant of every
// accepted call in the trailing window and rejects once the count reaches
// the limit. Stale instants are evicted on each call; there is no refill
// schedule beyond that.
type Window struct {
	mu     sync.Mutex
	stamps []time.Time
	limit  int
	window time.Duration
	now    func() time.Time
}

type Option func(*Window)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Window) { w.now = now }
}

func NewWindow(limit int, window time.Duration, opts ...Option) *Window {
	w := &Window{
		limit:  limit,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Window) Limit() int             { return w.limit }
func (w *Window) Window() time.Duration { return w.window }

// Allow records the call and returns true when fewer than Limit calls were
// accepted in the trailing window. A rejected call leaves the state as is.
func (w *Window) Allow() bool {
	now := w.now()
	cutoff := now.Add(-w.window)

	w.mu.Lock()
	defer w.mu.Unlock()

	// stamps are appended in order, so the fresh ones form a suffix
	i := 0
	for i < len(w.stamps) && !w.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.stamps = append(w.stamps[:0], w.stamps[i:]...)
	}

	if len(w.stamps) >= w.limit {
		return false
	}
	w.stamps = append(w.stamps, now)
	return true
}
