package ratelimit

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestWindow_RejectsAfterLimit(t *testing.T) {
	clock := newFakeClock()
	w := NewWindow(DefaultLimit, DefaultWindow, WithClock(clock.Now))

	for i := 0; i < DefaultLimit; i++ {
		if !w.Allow() {
			t.Fatalf("Allow() call %d = false, want true", i+1)
		}
		clock.Advance(time.Second)
	}

	if w.Allow() {
		t.Fatalf("Allow() call %d = true, want false", DefaultLimit+1)
	}
}

func TestWindow_RejectedCallDoesNotConsumeCapacity(t *testing.T) {
	clock := newFakeClock()
	w := NewWindow(2, time.Minute, WithClock(clock.Now))

	w.Allow()
	clock.Advance(10 * time.Second)
	w.Allow()

	for i := 0; i < 5; i++ {
		if w.Allow() {
			t.Fatalf("Allow() while full = true, want false")
		}
	}

	// only the first stamp has aged out; the rejected calls left nothing behind
	clock.Advance(50*time.Second + time.Millisecond)
	if !w.Allow() {
		t.Fatal("Allow() after oldest expired = false, want true")
	}
	if w.Allow() {
		t.Fatal("Allow() second call after one slot freed = true, want false")
	}
}

func TestWindow_OldestAgingFreesExactlyOneSlot(t *testing.T) {
	clock := newFakeClock()
	w := NewWindow(DefaultLimit, DefaultWindow, WithClock(clock.Now))

	// first call at t0, the remaining 29 one second later
	if !w.Allow() {
		t.Fatal("first Allow() = false")
	}
	clock.Advance(time.Second)
	for i := 1; i < DefaultLimit; i++ {
		if !w.Allow() {
			t.Fatalf("Allow() call %d = false", i+1)
		}
	}
	if w.Allow() {
		t.Fatal("Allow() at capacity = true, want false")
	}

	// t0 + 60s: the first stamp is exactly at the cutoff and is evicted
	clock.Advance(59 * time.Second)
	if !w.Allow() {
		t.Fatal("Allow() after oldest aged out = false, want true")
	}
	if w.Allow() {
		t.Fatal("Allow() should have freed exactly one slot")
	}
}

func TestWindow_FullWindowExpiry(t *testing.T) {
	clock := newFakeClock()
	w := NewWindow(3, time.Minute, WithClock(clock.Now))

	for i := 0; i < 3; i++ {
		w.Allow()
	}
	clock.Advance(2 * time.Minute)

	for i := 0; i < 3; i++ {
		if !w.Allow() {
			t.Fatalf("Allow() call %d after expiry = false, want true", i+1)
		}
	}
}

func TestWindow_Concurrent(t *testing.T) {
	w := NewWindow(DefaultLimit, time.Hour)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != DefaultLimit {
		t.Fatalf("allowed = %d, want %d", allowed, DefaultLimit)
	}
}

func TestNewWindow_Accessors(t *testing.T) {
	w := NewWindow(7, 5*time.Second)
	if w.Limit() != 7 {
		t.Errorf("Limit() = %d, want 7", w.Limit())
	}
	if w.Window() != 5*time.Second {
		t.Errorf("Window() = %v, want 5s", w.Window())
	}
}
