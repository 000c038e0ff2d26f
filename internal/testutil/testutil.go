package testutil

import (
	"sync"
	"time"

	"github.com/dimitar128425107/fasting-bot/internal/scheduler"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// FakeTimer is a manually fired timer handle.
type FakeTimer struct {
	Delay time.Duration

	mu      sync.Mutex
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer, reporting whether it was still pending.
func (t *FakeTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the callback unless the timer was stopped or already fired.
func (t *FakeTimer) Fire() bool {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	fn := t.fn
	t.mu.Unlock()

	fn()
	return true
}

// Pending reports whether the timer is armed and not yet fired.
func (t *FakeTimer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stopped && !t.fired
}

// FakeScheduler records armed timers so tests can fast-forward the clock by
// firing them explicitly.
type FakeScheduler struct {
	mu     sync.Mutex
	timers []*FakeTimer
}

// NewFakeScheduler creates an empty fake scheduler
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc records a timer instead of arming a real one.
func (s *FakeScheduler) AfterFunc(delay time.Duration, fn func()) scheduler.Handle {
	timer := &FakeTimer{Delay: delay, fn: fn}
	s.mu.Lock()
	s.timers = append(s.timers, timer)
	s.mu.Unlock()
	return timer
}

// Timers returns every timer ever armed, in arming order.
func (s *FakeScheduler) Timers() []*FakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*FakeTimer, len(s.timers))
	copy(out, s.timers)
	return out
}

// PendingCount returns the number of armed, unfired timers.
func (s *FakeScheduler) PendingCount() int {
	count := 0
	for _, t := range s.Timers() {
		if t.Pending() {
			count++
		}
	}
	return count
}

// FireAll fires every pending timer and reports how many actually ran.
func (s *FakeScheduler) FireAll() int {
	fired := 0
	for _, t := range s.Timers() {
		if t.Fire() {
			fired++
		}
	}
	return fired
}
