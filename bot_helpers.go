package main

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vipbot/internal/format"
)

// maxMessageLength is Telegram's limit for a single text message.
const maxMessageLength = 4096

// sendText sends a plain message. Member replies echo user input, so no parse mode.
func sendText(bot BotAPI, chatID int64, text string) {
	safeSend(bot, tgbotapi.NewMessage(chatID, text))
}

// sendLongText sends text as several plain messages when it exceeds maxMessageLength.
func sendLongText(bot BotAPI, chatID int64, text string) {
	for _, chunk := range format.SplitLines(text, maxMessageLength) {
		sendText(bot, chatID, chunk)
	}
}

func sendMarkdown(bot BotAPI, chatID int64, text string) {
	if bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Error sending Markdown message. Retrying as plain text", "err", err)
		msg.ParseMode = ""
		safeSend(bot, msg)
	}
}

func safeSend(bot BotAPI, msg tgbotapi.Chattable) {
	if bot == nil {
		return
	}
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Telegram send failed", "err", err)
	}
}
