package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vipbot/internal/store"
)

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	closeLogger()
	os.Exit(1)
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fatal("Invalid configuration", "err", err)
	}

	setupLogger(cfg.LogFile, cfg.LogLevel)
	defer closeLogger()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fatal("Failed to open registry store", "path", cfg.DBPath, "err", err)
	}
	defer st.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		fatal("Failed to connect bot", "err", err)
	}
	bot.Debug = cfg.Debug

	app := InitApp(cfg, st)
	app.Bot.SelfID = bot.Self.ID
	app.Bot.UserName = bot.Self.UserName
	slog.Info("Bot connected", "username", bot.Self.UserName, "prefix", cfg.CommandPrefix)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go runFlagReset(app, runCtx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	// Updates are handled one at a time, in arrival order.
	for {
		select {
		case <-runCtx.Done():
			bot.StopReceivingUpdates()
			slog.Info("Shutting down")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			handleUpdate(app, bot, update)
		}
	}
}

// handleUpdate processes one update; a panic only loses that update.
func handleUpdate(ctx *AppContext, bot BotAPI, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic while handling update", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	if update.Message == nil {
		return
	}
	handleMessage(ctx, bot, update.Message)
}
