package service

import (
	"errors"
	"time"
)

// ErrUnknownDuration is returned for a duration selection token outside the
// supported set.
var ErrUnknownDuration = errors.New("unknown duration selection")

// Duration selection tokens offered by the start-fast menu.
const (
	Duration18h  = "18h"
	Duration20h  = "20h"
	Duration24h  = "24h"
	Duration36h  = "36h"
	DurationTest = "test"
	DurationOpen = "open"
)

var fixedDurations = map[string]time.Duration{
	Duration18h:  18 * time.Hour,
	Duration20h:  20 * time.Hour,
	Duration24h:  24 * time.Hour,
	Duration36h:  36 * time.Hour,
	DurationTest: 15 * time.Minute, // short test fast
}

// ResolveDuration maps a selection token to a fast length. For the open
// token fixed is false and the duration is zero: the fast runs until ended
// manually. Unknown tokens return ErrUnknownDuration.
func ResolveDuration(token string) (d time.Duration, fixed bool, err error) {
	if token == DurationOpen {
		return 0, false, nil
	}
	if d, ok := fixedDurations[token]; ok {
		return d, true, nil
	}
	return 0, false, ErrUnknownDuration
}
