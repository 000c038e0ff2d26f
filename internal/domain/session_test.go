package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFastSession_ElapsedAndRemaining(t *testing.T) {
	start := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	session := &FastSession{
		Start: start,
		Plan:  NewFixedPlan(start, 24*time.Hour),
	}

	now := start.Add(6 * time.Hour)
	assert.Equal(t, 6*time.Hour, session.Elapsed(now))

	remaining, ok := session.Remaining(now)
	assert.True(t, ok)
	assert.Equal(t, 18*time.Hour, remaining)
}

func TestFastSession_RemainingOpenEnded(t *testing.T) {
	start := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	session := &FastSession{
		Start: start,
		Plan:  OpenEndedPlan(),
	}

	_, ok := session.Remaining(start.Add(time.Hour))
	assert.False(t, ok)
}

func TestFastSession_StartString(t *testing.T) {
	session := &FastSession{
		Start: time.Date(2024, 6, 15, 8, 5, 42, 0, time.UTC),
	}
	assert.Equal(t, "2024-06-15 08:05 UTC", session.StartString())
}

func TestMessageRef(t *testing.T) {
	var ref MessageRef
	assert.True(t, ref.IsZero())

	ref = MessageRef{ChatID: 42, MessageID: 1001}
	assert.False(t, ref.IsZero())

	sig, chatID := ref.MessageSig()
	assert.Equal(t, "1001", sig)
	assert.Equal(t, int64(42), chatID)
}

func TestUserState_PushHistoryBounded(t *testing.T) {
	tests := []struct {
		name        string
		pushes      int
		expectedLen int
	}{
		{
			name:        "under limit",
			pushes:      2,
			expectedLen: 2,
		},
		{
			name:        "at limit",
			pushes:      3,
			expectedLen: 3,
		},
		{
			name:        "over limit evicts oldest",
			pushes:      5,
			expectedLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &UserState{}
			base := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

			var pushed []*FastSession
			for i := 0; i < tt.pushes; i++ {
				s := &FastSession{Start: base.Add(time.Duration(i) * time.Hour)}
				pushed = append(pushed, s)
				state.PushHistory(s)
			}

			assert.Len(t, state.History, tt.expectedLen)

			// Most recent entries survive, in completion order.
			for i, s := range state.History {
				expected := pushed[tt.pushes-tt.expectedLen+i]
				assert.Same(t, expected, s, fmt.Sprintf("history[%d]", i))
			}
		})
	}
}
