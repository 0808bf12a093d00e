package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bodythrive/onerm/internal/config"
	"github.com/bodythrive/onerm/internal/telegram"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	envFile := flag.String("env-file", ".env", "optional .env file loaded before config overrides")
	debug := flag.Bool("debug", false, "log Telegram API traffic")
	flag.Parse()

	boot := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := config.LoadEnvFile(*envFile); err != nil {
		boot.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		boot.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.Telegram.Token == "" {
		boot.Error("telegram.token is required (or set ONERM_TELEGRAM_TOKEN)")
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		log.Error("telegram login failed", "error", err)
		os.Exit(1)
	}
	api.Debug = *debug
	log.Info("onerm bot starting", "version", Version, "bot", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot := telegram.NewBot(api, log)
	if err := bot.Run(ctx, updates); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("bot stopped", "error", err)
		os.Exit(1)
	}
	api.StopReceivingUpdates()
	log.Info("bot stopped", "chats", bot.Sessions())
}
