package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"

	"github.com/Freeeeeet/meeting_bot/internal/apiclient"
	"github.com/Freeeeeet/meeting_bot/internal/app"
	"github.com/Freeeeeet/meeting_bot/internal/config"
	"github.com/Freeeeeet/meeting_bot/internal/controller"
	"github.com/Freeeeeet/meeting_bot/internal/service"
	"github.com/Freeeeeet/meeting_bot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting meeting bot",
		"environment", cfg.Environment,
		"api_base_url", cfg.APIBaseURL,
		"token_length", len(cfg.TelegramToken))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Клиент удалённого API и сервисы поверх него
	api := apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	authService := service.NewAuthService(api, logger)
	profileService := service.NewProfileService(api, logger)
	meetingService := service.NewMeetingService(api, logger)

	sessions := session.NewManager()

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Sugar().Fatalw("Failed to create bot", "error", err)
	}

	botController := controller.NewBotController(
		b,
		authService,
		profileService,
		meetingService,
		sessions,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Sugar().Fatalw("Failed to register handlers", "error", err)
	}

	// Фоновая чистка заброшенных сессий
	janitor := app.NewJanitor(sessions, logger)
	janitor.Start(ctx)
	defer janitor.Stop()

	logger.Info("🤖 Bot is running. Press Ctrl+C to stop.")
	if err := botController.Start(ctx); err != nil {
		logger.Sugar().Fatalw("Bot stopped with error", "error", err)
	}

	logger.Info("Bot shut down gracefully")
}
