package domain

import (
	"strconv"
	"time"
)

// HistoryLimit is the number of past fasts kept per user.
const HistoryLimit = 3

// MessageRef is an opaque handle to an outbound chat message, kept so the
// status message can later be edited in place.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// IsZero reports whether the handle has been set.
func (r MessageRef) IsZero() bool {
	return r == MessageRef{}
}

// MessageSig satisfies telebot's Editable contract.
func (r MessageRef) MessageSig() (string, int64) {
	return strconv.Itoa(r.MessageID), r.ChatID
}

// FastSession represents one fasting attempt.
type FastSession struct {
	Start     time.Time // UTC, immutable after creation
	Plan      Plan
	Completed bool
	StatusMsg MessageRef
}

// Elapsed returns how long the fast has been running at the given time.
func (s *FastSession) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.Start)
}

// Remaining returns the time left until the planned end; ok is false for
// open-ended fasts.
func (s *FastSession) Remaining(now time.Time) (time.Duration, bool) {
	end, ok := s.Plan.End()
	if !ok {
		return 0, false
	}
	return end.Sub(now), true
}

// StartString returns the start timestamp in the history display format.
func (s *FastSession) StartString() string {
	return s.Start.UTC().Format("2006-01-02 15:04 UTC")
}

// UserState holds one user's fasting state: at most one active session and
// a bounded history of finished ones.
type UserState struct {
	Current *FastSession
	History []*FastSession
}

// PushHistory appends a session to the history, evicting the oldest entry
// when the limit is exceeded.
func (u *UserState) PushHistory(s *FastSession) {
	u.History = append(u.History, s)
	if len(u.History) > HistoryLimit {
		u.History = u.History[len(u.History)-HistoryLimit:]
	}
}
