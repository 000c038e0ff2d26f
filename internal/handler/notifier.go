package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Notifier delivers fast-completion notifications on behalf of the
// lifecycle engine. It sends a standalone message and leaves the original
// status message untouched, matching the bot's long-standing behavior of
// only editing that message on a manual end.
type Notifier struct {
	bot    *tele.Bot
	logger *zap.Logger
}

// NewNotifier creates a new completion notifier
func NewNotifier(bot *tele.Bot, logger *zap.Logger) *Notifier {
	return &Notifier{bot: bot, logger: logger}
}

// NotifyFastComplete sends the completion message to the chat the fast was
// started from
func (n *Notifier) NotifyFastComplete(chatID int64) error {
	n.logger.Info("Sending fast completion notification", zap.Int64("chat_id", chatID))
	_, err := n.bot.Send(&tele.Chat{ID: chatID}, "Your fast has completed.")
	return err
}
