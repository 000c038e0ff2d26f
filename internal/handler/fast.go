package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dimitar128425107/fasting-bot/internal/domain"
	"github.com/dimitar128425107/fasting-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleFastDuration starts a fast for the selected duration token
func (h *Handler) handleFastDuration(c tele.Context) error {
	userID := c.Sender().ID
	chatID := c.Chat().ID
	token := strings.TrimSpace(c.Data())

	session, err := h.fastService.Start(userID, chatID, token)
	if err != nil {
		if errors.Is(err, service.ErrUnknownDuration) {
			h.logger.Warn("Unknown duration token",
				zap.String("token", token),
				zap.Int64("user_id", userID),
			)
			return h.edit(c, "Unknown duration option.", mainMenuMarkup())
		}
		h.logger.Error("Failed to start fast", zap.Error(err), zap.Int64("user_id", userID))
		return h.edit(c, "Could not start the fast. Try again.", mainMenuMarkup())
	}

	// Send the status message and remember it for later in-place edits.
	msg, err := h.bot.Send(c.Chat(), statusText("Fast started.", session, time.Now().UTC()), statusMarkup())
	if err != nil {
		h.logger.Error("Failed to send status message",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
	} else {
		h.fastService.AttachStatusMessage(userID, domain.MessageRef{
			ChatID:    chatID,
			MessageID: msg.ID,
		})
	}

	return h.edit(c, "Fast started. Use the status message to monitor it.", mainMenuMarkup())
}

// handleRefresh re-renders the status message with fresh elapsed/remaining
// times; nothing else changes
func (h *Handler) handleRefresh(c tele.Context) error {
	userID := c.Sender().ID

	status, err := h.fastService.Status(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveFast) {
			return h.edit(c, "No active fast.", mainMenuMarkup())
		}
		h.logger.Error("Failed to read fast status", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	remaining := "N/A"
	if status.HasRemaining {
		remaining = domain.FormatDuration(status.Remaining)
	}
	text := fmt.Sprintf(
		"Fast status:\n\nDuration: %s\nElapsed: %s\nRemaining: %s",
		status.Plan, domain.FormatDuration(status.Elapsed), remaining,
	)

	return h.edit(c, text, statusMarkup())
}

// handleEndNow terminates the active fast early
func (h *Handler) handleEndNow(c tele.Context) error {
	userID := c.Sender().ID

	session, err := h.fastService.EndNow(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveFast) {
			return h.edit(c, "No active fast to end.", mainMenuMarkup())
		}
		h.logger.Error("Failed to end fast", zap.Error(err), zap.Int64("user_id", userID))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	now := time.Now().UTC()
	text := fmt.Sprintf(
		"Fast ended manually.\n\nTotal elapsed: %s",
		domain.FormatDuration(session.Elapsed(now)),
	)

	// Rewrite the recorded status message into a terminal view without
	// buttons. The pressed message normally is that status message, but the
	// recorded handle wins when they differ.
	if !session.StatusMsg.IsZero() {
		if _, err := h.bot.Edit(session.StatusMsg, text); err != nil {
			h.logger.Warn("Failed to edit status message",
				zap.Error(err),
				zap.Int64("user_id", userID),
			)
		}
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	} else if err := h.edit(c, text, nil); err != nil {
		return err
	}

	// Separate confirmation with a way back to the menu.
	_, err = h.bot.Send(
		c.Chat(),
		fmt.Sprintf("Fast saved in history (max %d stored).", domain.HistoryLimit),
		mainMenuMarkup(),
	)
	if err != nil {
		h.logger.Error("Failed to send end confirmation", zap.Error(err), zap.Int64("user_id", userID))
	}
	return nil
}

// statusText renders the status message body for an active fast
func statusText(header string, session *domain.FastSession, now time.Time) string {
	remaining := "N/A"
	if r, ok := session.Remaining(now); ok {
		remaining = domain.FormatDuration(r)
	}
	return fmt.Sprintf(
		"%s\n\nDuration: %s\nElapsed: %s\nRemaining: %s",
		header, session.Plan, domain.FormatDuration(session.Elapsed(now)), remaining,
	)
}
