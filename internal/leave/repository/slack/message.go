package slack

import (
	"context"
	"fmt"
	"html"
	"math"
	"strconv"
	"time"

	slackapi "github.com/slack-go/slack"

	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/model"
	pkgLog "leave-calendar-sync/pkg/log"
)

type implRepository struct {
	client    *slackapi.Client
	channelID string
	l         pkgLog.Logger
}

// New creates a Slack-backed message repository reading one channel.
func New(client *slackapi.Client, channelID string, l pkgLog.Logger) repository.MessageRepository {
	return &implRepository{
		client:    client,
		channelID: channelID,
		l:         l,
	}
}

func (r *implRepository) FetchRecent(ctx context.Context, limit int) ([]model.Message, error) {
	resp, err := r.client.GetConversationHistoryContext(ctx, &slackapi.GetConversationHistoryParameters{
		ChannelID: r.channelID,
		Limit:     limit,
	})
	if err != nil {
		r.l.Errorf(ctx, "slack repository: failed to fetch history of %s: %v", r.channelID, err)
		return nil, fmt.Errorf("%w: %w", repository.ErrTransport, err)
	}

	messages := make([]model.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		if m.Text == "" {
			continue
		}
		ts, err := ParseTimestamp(m.Timestamp)
		if err != nil {
			r.l.Warnf(ctx, "slack repository: skipping message with bad ts %q: %v", m.Timestamp, err)
			continue
		}
		messages = append(messages, model.Message{
			Text:      html.UnescapeString(m.Text),
			Timestamp: ts,
		})
	}
	return messages, nil
}

// ParseTimestamp converts a Slack ts ("1721260800.000200") to a time.
func ParseTimestamp(ts string) (time.Time, error) {
	f, err := strconv.ParseFloat(ts, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slack ts %q: %w", ts, err)
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(math.Round(frac*1e6))*int64(time.Microsecond)).UTC(), nil
}
