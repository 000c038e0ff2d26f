package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("username", c.Sender().Username),
	)

	return c.Send(
		"Fasting bot ready.\n\n"+
			"Use the buttons below to start a new fast or manage your last fasts.",
		mainMenuMarkup(),
	)
}

// handleMainMenu rewrites the pressed message back into the main menu
func (h *Handler) handleMainMenu(c tele.Context) error {
	return h.edit(c, "Fasting bot main menu.\n\nChoose an option:", mainMenuMarkup())
}
