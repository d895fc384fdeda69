package telegram

import (
	"context"

	"leave-calendar-sync/internal/leave"
	pkgLog "leave-calendar-sync/pkg/log"
)

// MaxReportErrors caps how many errors one summary lists.
const MaxReportErrors = 5

// Sender is the part of the Telegram bot the notifier needs.
type Sender interface {
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type notifier struct {
	l      pkgLog.Logger
	bot    Sender
	chatID int64
}

// New creates a Notifier that posts sync summaries to one Telegram chat.
func New(l pkgLog.Logger, bot Sender, chatID int64) leave.Notifier {
	return &notifier{
		l:      l,
		bot:    bot,
		chatID: chatID,
	}
}
