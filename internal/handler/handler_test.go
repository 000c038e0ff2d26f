package handler

import (
	"testing"
	"time"

	"github.com/dimitar128425107/fasting-bot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHistoryText(t *testing.T) {
	start := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		history  []*domain.FastSession
		expected string
	}{
		{
			name:     "empty history",
			history:  nil,
			expected: "No previous fasts recorded (last 3 are stored per user).",
		},
		{
			name: "single completed fast",
			history: []*domain.FastSession{
				{
					Start:     start,
					Plan:      domain.NewFixedPlan(start, 18*time.Hour),
					Completed: true,
				},
			},
			expected: "Last fasts (max 3):\n" +
				"1) start: 2024-06-15 08:00 UTC, duration: 18:00:00, status: completed",
		},
		{
			name: "abandoned and open-ended entries",
			history: []*domain.FastSession{
				{
					Start:     start.Add(24 * time.Hour),
					Plan:      domain.NewFixedPlan(start.Add(24*time.Hour), 20*time.Hour),
					Completed: false,
				},
				{
					Start:     start,
					Plan:      domain.OpenEndedPlan(),
					Completed: false,
				},
			},
			expected: "Last fasts (max 3):\n" +
				"1) start: 2024-06-16 08:00 UTC, duration: 20:00:00, status: not completed\n" +
				"2) start: 2024-06-15 08:00 UTC, duration: open-ended, status: not completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, historyText(tt.history))
		})
	}
}

func TestStatusText(t *testing.T) {
	start := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	t.Run("fixed duration", func(t *testing.T) {
		session := &domain.FastSession{
			Start: start,
			Plan:  domain.NewFixedPlan(start, 24*time.Hour),
		}
		got := statusText("Fast started.", session, start.Add(6*time.Hour))
		assert.Equal(t,
			"Fast started.\n\nDuration: 24:00:00\nElapsed: 06:00:00\nRemaining: 18:00:00",
			got,
		)
	})

	t.Run("open-ended has no remaining", func(t *testing.T) {
		session := &domain.FastSession{
			Start: start,
			Plan:  domain.OpenEndedPlan(),
		}
		got := statusText("Fast status:", session, start.Add(90*time.Minute))
		assert.Equal(t,
			"Fast status:\n\nDuration: open-ended\nElapsed: 01:30:00\nRemaining: N/A",
			got,
		)
	})
}

func TestDurationMenuMarkupTokens(t *testing.T) {
	markup := durationMenuMarkup()

	var tokens []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			if btn.Data != "" {
				tokens = append(tokens, btn.Data)
			}
		}
	}

	assert.Equal(t, []string{"18h", "20h", "24h", "36h", "test", "open"}, tokens)
}
