package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Notifier delivers a plain-text message to the configured admin chats.
// The implementation must not log above Info, or the handler would feed
// on its own failures.
type Notifier interface {
	NotifyAdmins(text string)
}

// SetupTelegramHandler wraps lg so that records at or above level are
// also forwarded to the admins. Forwarding is asynchronous and lossy:
// when the queue is full the record is kept in the log only.
func SetupTelegramHandler(lg *slog.Logger, bot Notifier, level slog.Level) *slog.Logger {
	h := &telegramHandler{
		next:  lg.Handler(),
		queue: make(chan string, 64),
		level: level,
	}

	go func() {
		for text := range h.queue {
			bot.NotifyAdmins(text)
		}
	}()

	return slog.New(h)
}

type telegramHandler struct {
	next  slog.Handler
	queue chan string
	level slog.Level
}

func (h *telegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *telegramHandler) Handle(ctx context.Context, rec slog.Record) error {
	if rec.Level >= h.level {
		select {
		case h.queue <- formatRecord(rec):
		default:
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &telegramHandler{next: h.next.WithAttrs(attrs), queue: h.queue, level: h.level}
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	return &telegramHandler{next: h.next.WithGroup(name), queue: h.queue, level: h.level}
}

func formatRecord(rec slog.Record) string {
	var b strings.Builder

	switch {
	case rec.Level >= slog.LevelError:
		b.WriteString("🆘 ")
	case rec.Level >= slog.LevelWarn:
		b.WriteString("⚠️ ")
	default:
		b.WriteString("ℹ️ ")
	}
	b.WriteString(rec.Message)

	rec.Attrs(func(a slog.Attr) bool {
		b.WriteString(fmt.Sprintf("\n%s: %v", a.Key, a.Value))
		return true
	})

	return b.String()
}
