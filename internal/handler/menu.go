package handler

import (
	"fmt"
	"strings"

	"github.com/dimitar128425107/fasting-bot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// handleStartFastMenu shows the fasting duration choices
func (h *Handler) handleStartFastMenu(c tele.Context) error {
	text := "Choose fasting duration:\n" +
		"- 18 / 6 → 18 hours fast\n" +
		"- 20 / 4 → 20 hours fast\n" +
		"- 24 h\n" +
		"- 36 h\n" +
		"- Test me → short test fast (15 minutes)\n" +
		"- Open-ended → runs until you end it"

	return h.edit(c, text, durationMenuMarkup())
}

// handleManageFasts shows the user's recent fast history
func (h *Handler) handleManageFasts(c tele.Context) error {
	history := h.fastService.History(c.Sender().ID)
	return h.edit(c, historyText(history), backMarkup())
}

// historyText renders the history list, most recent first
func historyText(history []*domain.FastSession) string {
	if len(history) == 0 {
		return fmt.Sprintf("No previous fasts recorded (last %d are stored per user).", domain.HistoryLimit)
	}

	lines := []string{fmt.Sprintf("Last fasts (max %d):", domain.HistoryLimit)}
	for i, session := range history {
		status := "not completed"
		if session.Completed {
			status = "completed"
		}
		lines = append(lines, fmt.Sprintf(
			"%d) start: %s, duration: %s, status: %s",
			i+1, session.StartString(), session.Plan, status,
		))
	}
	return strings.Join(lines, "\n")
}
