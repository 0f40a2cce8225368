package main

import (
	"SurveyBot/config"
	"SurveyBot/handler"
	"SurveyBot/i18n"
	"SurveyBot/repo"
	"SurveyBot/survey"
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	setupLogger(cfg)

	sigCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, stop := context.WithCancelCause(sigCtx)
	defer stop(nil)

	storage, err := InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing storage")
	}

	service := survey.NewService(repo.NewSessionStore(), storage)
	surveyHandler := handler.NewSurveyBotHandler(service)

	opts := []bot.Option{
		bot.WithDefaultHandler(surveyHandler.Handler),
		bot.WithErrorsHandler(telegramErrors(stop)),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if errors.Is(err, bot.ErrorUnauthorized) {
		log.Fatal().Err(err).Msg("Telegram returned Unauthorized. Check that TELEGRAM_BOT_TOKEN is correct and not revoked")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot")
	}

	if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
		log.Warn().Err(err).Msg("error deleting webhook")
	}

	log.Info().Msg("Bot started")
	b.Start(ctx)
	if cause := context.Cause(ctx); errors.Is(cause, bot.ErrorUnauthorized) {
		log.Fatal().Err(cause).Msg("Telegram returned Unauthorized. Check that TELEGRAM_BOT_TOKEN is correct and not revoked")
	}
	log.Info().Msg("Bot stopped")
}

// telegramErrors logs polling errors and stops the bot once the token is rejected.
func telegramErrors(stop context.CancelCauseFunc) func(error) {
	return func(err error) {
		if errors.Is(err, bot.ErrorUnauthorized) {
			stop(err)
			return
		}
		log.Error().Err(err).Msg("telegram error")
	}
}

// InitializeStorage opens the spreadsheet and the optional backups configured in cfg.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*repo.SurveyStorage, error) {
	sheet, err := repo.NewGoogleSheetsClient(ctx, cfg.GoogleServiceAccountFile, cfg.GoogleSheetID, cfg.GoogleWorksheetName)
	if err != nil {
		return nil, err
	}

	var backups []repo.Sink
	if cfg.LocalExcelFile != "" {
		log.Info().Str("path", cfg.LocalExcelFile).Msg("local Excel backup enabled")
		backups = append(backups, repo.NewExcelBackup(cfg.LocalExcelFile))
	}
	if cfg.FirebaseDatabaseURL != "" {
		mirror, err := repo.NewFirebaseMirror(ctx, cfg.GoogleServiceAccountFile, cfg.FirebaseDatabaseURL, cfg.FirebaseResponsesPath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.FirebaseResponsesPath).Msg("Firebase mirror enabled")
		backups = append(backups, mirror)
	}

	return repo.NewSurveyStorage(sheet, i18n.StoreLabels(), backups...), nil
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
