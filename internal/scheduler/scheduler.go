// Package scheduler defines the deferred-execution boundary the timer
// coordinator delegates to: run a callback once after a delay, cancelable
// through the returned handle.
package scheduler

import "time"

// Handle refers to a single armed timer.
type Handle interface {
	// Stop cancels the timer. It reports false when the callback already
	// fired or was stopped before; callers needing a stronger guarantee
	// must guard inside the callback itself.
	Stop() bool
}

// Scheduler arms one-shot timers.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) Handle
}

type realScheduler struct{}

// New returns a Scheduler backed by time.AfterFunc. Callbacks run on their
// own goroutine.
func New() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(delay time.Duration, fn func()) Handle {
	return time.AfterFunc(delay, fn)
}
