package telegram

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func (f *fakeSender) last(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent)
	return f.sent[len(f.sent)-1]
}

func newTestBot() (*Bot, *fakeSender) {
	s := &fakeSender{}
	return NewBot(s, slog.New(slog.NewTextHandler(io.Discard, nil))), s
}

func update(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		Text: text,
	}}
}

func TestHandleUpdateShow(t *testing.T) {
	b, s := newTestBot()
	b.HandleUpdate(update(1, "/show"))

	msg := s.last(t)
	require.Equal(t, int64(1), msg.ChatID)
	require.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	require.Contains(t, msg.Text, "<pre>")
	require.Contains(t, msg.Text, "Estimated 1RM: 116.7 kg")
	require.NotNil(t, msg.ReplyMarkup)
}

func TestChatsAreIndependent(t *testing.T) {
	b, s := newTestBot()
	b.HandleUpdate(update(1, "140x2"))
	require.Contains(t, s.last(t).Text, "140 kg x 2 reps")

	b.HandleUpdate(update(2, "/show"))
	require.Contains(t, s.last(t).Text, "100 kg x 5 reps")
	require.Equal(t, 2, b.Sessions())
}

func TestFormulaKeyboardText(t *testing.T) {
	b, s := newTestBot()
	b.HandleUpdate(update(1, "Brzycki"))
	require.Contains(t, s.last(t).Text, "Estimated 1RM: 112.5 kg")
}

func TestInvalidInputReply(t *testing.T) {
	b, s := newTestBot()
	b.HandleUpdate(update(1, "/reps@onerm_bot 30"))

	text := s.last(t).Text
	require.Contains(t, text, "⚠️")
	require.Contains(t, text, "Estimated 1RM: --")
}

func TestHelpAndUnknown(t *testing.T) {
	b, s := newTestBot()
	b.HandleUpdate(update(1, "/start"))
	require.Contains(t, s.last(t).Text, "formula &lt;name&gt;")

	b.HandleUpdate(update(1, "/deadlift"))
	require.Contains(t, s.last(t).Text, "/help")
}

func TestIgnoredUpdates(t *testing.T) {
	b, s := newTestBot()
	b.HandleUpdate(tgbotapi.Update{})
	b.HandleUpdate(update(1, ""))
	require.Empty(t, s.sent)
}

func TestSendErrorIsLogged(t *testing.T) {
	b, s := newTestBot()
	s.err = errors.New("network down")
	b.HandleUpdate(update(1, "/show"))
	require.Len(t, s.sent, 1)
}

func TestRunStopsOnClose(t *testing.T) {
	b, s := newTestBot()
	updates := make(chan tgbotapi.Update, 1)
	updates <- update(7, "reset")
	close(updates)

	require.NoError(t, b.Run(context.Background(), updates))
	require.True(t, strings.Contains(s.last(t).Text, "116.7 kg"))
}

func TestRunStopsOnCancel(t *testing.T) {
	b, _ := newTestBot()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx, make(chan tgbotapi.Update)) }()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
