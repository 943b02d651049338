package logger

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// chanNotifier hands forwarded texts to the test over a channel, since
// the telegram handler delivers from its own goroutine.
type chanNotifier struct {
	ch chan string
}

func (n *chanNotifier) NotifyAdmins(text string) {
	n.ch <- text
}

func (n *chanNotifier) next(t *testing.T) string {
	t.Helper()
	select {
	case text := <-n.ch:
		return text
	case <-time.After(2 * time.Second):
		t.Fatal("no admin notification arrived")
		return ""
	}
}

func (n *chanNotifier) none(t *testing.T) {
	t.Helper()
	select {
	case text := <-n.ch:
		t.Fatalf("unexpected admin notification %q", text)
	case <-time.After(50 * time.Millisecond):
	}
}

func testTelegramLogger(level slog.Level) (*slog.Logger, *chanNotifier) {
	base := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bot := &chanNotifier{ch: make(chan string, 8)}
	return SetupTelegramHandler(base, bot, level), bot
}

func TestWarningsReachAdmins(t *testing.T) {
	lg, bot := testTelegramLogger(slog.LevelWarn)

	lg.Warn("record sync failed", slog.String("target", "sheets"))

	got := bot.next(t)
	if !strings.HasPrefix(got, "⚠️ ") {
		t.Fatalf("expected the warning prefix, got %q", got)
	}
	if !strings.Contains(got, "record sync failed") {
		t.Fatalf("expected the message text, got %q", got)
	}
	if !strings.Contains(got, "target: sheets") {
		t.Fatalf("expected the attributes spelled out, got %q", got)
	}
}

func TestErrorsGetTheLoudPrefix(t *testing.T) {
	lg, bot := testTelegramLogger(slog.LevelWarn)

	lg.Error("persisting registration")
	if got := bot.next(t); !strings.HasPrefix(got, "🆘 ") {
		t.Fatalf("expected the error prefix, got %q", got)
	}
}

func TestInfoStaysOutOfAdminChats(t *testing.T) {
	lg, bot := testTelegramLogger(slog.LevelWarn)

	lg.Info("registration saved")
	bot.none(t)
}

func TestForwardingSurvivesWith(t *testing.T) {
	lg, bot := testTelegramLogger(slog.LevelWarn)

	lg.With(slog.String("module", "sink")).Warn("record sync failed")
	got := bot.next(t)
	if !strings.Contains(got, "record sync failed") {
		t.Fatalf("expected forwarding through With, got %q", got)
	}
}
