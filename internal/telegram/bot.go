// Package telegram serves the calculator as a Telegram bot, one calculator
// per chat.
package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bodythrive/onerm/internal/calculator"
	"github.com/bodythrive/onerm/internal/render"
)

// chartWidth keeps the bar chart inside a phone screen.
const chartWidth = 16

// Sender is the part of *tgbotapi.BotAPI the bot uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot routes chat messages to per-chat calculators.
type Bot struct {
	api Sender
	log *slog.Logger

	mu       sync.Mutex
	sessions map[int64]*calculator.Calculator
}

// NewBot creates a bot that replies through api.
func NewBot(api Sender, log *slog.Logger) *Bot {
	return &Bot{
		api:      api,
		log:      log,
		sessions: make(map[int64]*calculator.Calculator),
	}
}

var formulaKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton("Epley"),
		tgbotapi.NewKeyboardButton("Brzycki"),
		tgbotapi.NewKeyboardButton("Lombardi"),
	),
)

// Run handles updates until ctx is cancelled or the channel closes.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(u)
		}
	}
}

// HandleUpdate answers one update. Updates without a text message are ignored.
func (b *Bot) HandleUpdate(u tgbotapi.Update) {
	if u.Message == nil || u.Message.Chat == nil || u.Message.Text == "" {
		return
	}
	chatID := u.Message.Chat.ID

	msg := tgbotapi.NewMessage(chatID, b.respond(chatID, u.Message.Text))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = formulaKeyboard

	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("telegram send failed", "chat_id", chatID, "error", err)
	}
}

// Sessions returns the number of chats with calculator state.
func (b *Bot) Sessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

// respond applies text to the chat's calculator and returns the HTML reply.
func (b *Bot) respond(chatID int64, text string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	calc, ok := b.sessions[chatID]
	if !ok {
		calc = calculator.New()
		b.sessions[chatID] = calc
	}

	cmd, err := calc.Exec(text)
	if errors.Is(err, calculator.ErrUnknownCommand) {
		return "I don't know that command. Send /help for the list."
	}

	switch cmd {
	case calculator.CmdHelp:
		return "<pre>" + html.EscapeString(calculator.HelpText) + "</pre>"
	case calculator.CmdQuit:
		return "Your numbers stay here. Send /reset to start over."
	}

	var buf bytes.Buffer
	if err != nil {
		fmt.Fprintf(&buf, "⚠️ %s\n", html.EscapeString(err.Error()))
	}
	var chart bytes.Buffer
	if rerr := render.Text(&chart, render.FromView(calc.View()), chartWidth); rerr != nil {
		b.log.Error("telegram render failed", "chat_id", chatID, "error", rerr)
		return "Something went wrong, try again."
	}
	buf.WriteString("<pre>" + html.EscapeString(chart.String()) + "</pre>")
	return buf.String()
}
