package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimitar128425107/fasting-bot/internal/config"
	"github.com/dimitar128425107/fasting-bot/internal/handler"
	"github.com/dimitar128425107/fasting-bot/internal/repository/memory"
	"github.com/dimitar128425107/fasting-bot/internal/scheduler"
	"github.com/dimitar128425107/fasting-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Fasting Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize session storage and timer coordination
	sessionRepo := memory.NewSessionRepo()
	timerService := service.NewTimerService(scheduler.New(), logger)

	// Initialize fast lifecycle engine
	notifier := handler.NewNotifier(bot, logger)
	fastService := service.NewFastService(sessionRepo, timerService, notifier, logger)

	// Initialize handler
	h := handler.NewHandler(bot, fastService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	timerService.CancelAll()

	logger.Info("Bot stopped gracefully")
}
