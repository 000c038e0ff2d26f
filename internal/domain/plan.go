package domain

import (
	"fmt"
	"time"
)

// Plan describes how long a fast is meant to run. It is either fixed,
// carrying both the planned duration and the planned end, or open-ended,
// carrying neither. The two fields are only ever set together, so a
// half-initialized plan cannot be constructed.
type Plan struct {
	duration time.Duration
	end      time.Time
	fixed    bool
}

// NewFixedPlan returns a plan of length d starting at start.
func NewFixedPlan(start time.Time, d time.Duration) Plan {
	return Plan{duration: d, end: start.Add(d), fixed: true}
}

// OpenEndedPlan returns a plan with no target; the duration is known only
// once the fast is ended manually.
func OpenEndedPlan() Plan {
	return Plan{}
}

// ClosedPlan returns a fixed plan with an explicit end, used when a fast is
// ended manually: the planned duration is kept (or filled in retroactively
// for an open-ended fast) while the end becomes the actual end time.
func ClosedPlan(d time.Duration, end time.Time) Plan {
	return Plan{duration: d, end: end, fixed: true}
}

// Fixed reports whether the plan has a duration target.
func (p Plan) Fixed() bool {
	return p.fixed
}

// Duration returns the planned duration; ok is false for open-ended plans.
func (p Plan) Duration() (time.Duration, bool) {
	return p.duration, p.fixed
}

// End returns the planned end time; ok is false for open-ended plans.
func (p Plan) End() (time.Time, bool) {
	return p.end, p.fixed
}

// String returns the planned duration as HH:MM:SS, or "open-ended".
func (p Plan) String() string {
	if !p.fixed {
		return "open-ended"
	}
	return FormatDuration(p.duration)
}

// FormatDuration renders a duration as HH:MM:SS. Negative durations are
// clamped to zero.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
