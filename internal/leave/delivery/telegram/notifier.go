package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"leave-calendar-sync/internal/leave"
	pkgTelegram "leave-calendar-sync/pkg/telegram"
)

var errChatNotConfigured = errors.New("telegram chat id is not configured")

func (n *notifier) NotifySync(ctx context.Context, report leave.SyncReport) error {
	if n.chatID == 0 {
		return errChatNotConfigured
	}

	text := FormatReport(report)
	if err := n.bot.SendMessageWithMode(ctx, n.chatID, text, pkgTelegram.ParseModeHTML); err != nil {
		return fmt.Errorf("failed to send sync summary: %w", err)
	}

	n.l.Debugf(ctx, "telegram.notifier: summary for run %s sent to chat %d", report.RunID, n.chatID)
	return nil
}

// FormatReport renders a report as Telegram HTML.
func FormatReport(report leave.SyncReport) string {
	var b strings.Builder

	icon := "✅"
	if len(report.Errors) > 0 {
		icon = "⚠️"
	}
	fmt.Fprintf(&b, "%s <b>Leave sync</b> <code>%s</code>\n", icon, html.EscapeString(report.RunID))
	fmt.Fprintf(&b, "messages: %d, lines: %d\n", report.Messages, report.Lines)
	fmt.Fprintf(&b, "created: %d, skipped: %d, archived: %d", report.Created, report.Skipped, report.Archived)
	if report.Superseded > 0 {
		fmt.Fprintf(&b, ", superseded: %d", report.Superseded)
	}
	if report.Unrecognized > 0 {
		fmt.Fprintf(&b, ", unrecognized: %d", report.Unrecognized)
	}

	if len(report.Errors) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "\n\n<b>errors (%d)</b>", len(report.Errors))
	for i, e := range report.Errors {
		if i == MaxReportErrors {
			fmt.Fprintf(&b, "\n… and %d more", len(report.Errors)-MaxReportErrors)
			break
		}
		b.WriteString("\n• ")
		b.WriteString(html.EscapeString(e.Op))
		if e.Date != "" {
			b.WriteString(" ")
			b.WriteString(e.Date)
		}
		b.WriteString(": ")
		b.WriteString(html.EscapeString(e.Message))
	}
	return b.String()
}
