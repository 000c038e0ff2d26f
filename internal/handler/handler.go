package handler

import (
	"strings"

	"github.com/dimitar128425107/fasting-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	fastService *service.FastService
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, fastService *service.FastService, logger *zap.Logger) *Handler {
	return &Handler{
		bot:         bot,
		fastService: fastService,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnMainMenu, h.handleMainMenu)
	h.bot.Handle(&btnStartFast, h.handleStartFastMenu)
	h.bot.Handle(&btnManageFasts, h.handleManageFasts)
	h.bot.Handle(&btnDuration, h.handleFastDuration)
	h.bot.Handle(&btnRefresh, h.handleRefresh)
	h.bot.Handle(&btnEndNow, h.handleEndNow)

	// Anything else just gets acknowledged
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleCallback catches callbacks no registered button claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", strings.TrimSpace(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if the message is not
// modified it was already edited, so just acknowledge the callback.
// Otherwise acknowledge and return the error so the caller can send a new
// message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// edit rewrites the callback's message in place, falling back to a new
// message when editing is impossible.
func (h *Handler) edit(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	var err error
	if markup != nil {
		err = c.Edit(text, markup)
	} else {
		err = c.Edit(text)
	}
	if err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		if markup != nil {
			return c.Send(text, markup)
		}
		return c.Send(text)
	}
	return c.Respond()
}

// Inline keyboard buttons
var (
	btnStartFast = tele.Btn{
		Unique: "menu_start_fast",
		Text:   "Start fast",
	}
	btnManageFasts = tele.Btn{
		Unique: "menu_manage_fasts",
		Text:   "Manage fasts",
	}
	btnMainMenu = tele.Btn{
		Unique: "menu_main",
		Text:   "⬅ Back",
	}
	btnDuration = tele.Btn{
		Unique: "fast_duration",
	}
	btnRefresh = tele.Btn{
		Unique: "fast_refresh",
		Text:   "🔄 Refresh",
	}
	btnEndNow = tele.Btn{
		Unique: "fast_end_now",
		Text:   "⏹ END NOW",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnStartFast),
		menu.Row(btnManageFasts),
	)
	return menu
}

// durationMenuMarkup returns the fasting duration keyboard; each button
// carries its duration selection token as callback data
func durationMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data("18 / 6", btnDuration.Unique, service.Duration18h),
			menu.Data("20 / 4", btnDuration.Unique, service.Duration20h),
		),
		menu.Row(
			menu.Data("24 h", btnDuration.Unique, service.Duration24h),
			menu.Data("36 h", btnDuration.Unique, service.Duration36h),
		),
		menu.Row(
			menu.Data("Test me", btnDuration.Unique, service.DurationTest),
			menu.Data("Open-ended", btnDuration.Unique, service.DurationOpen),
		),
		menu.Row(btnMainMenu),
	)
	return menu
}

// statusMarkup returns the keyboard attached to an active fast's status
// message
func statusMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnRefresh),
		menu.Row(btnEndNow),
	)
	return menu
}

// backMarkup returns a lone back-to-main-menu keyboard
func backMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnMainMenu))
	return menu
}
