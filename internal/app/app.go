package app

import (
	"context"
	"fmt"

	"leave-calendar-sync/config"
	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/parser"
	"leave-calendar-sync/internal/leave/repository"
	gcalRepo "leave-calendar-sync/internal/leave/repository/gcal"
	notionRepo "leave-calendar-sync/internal/leave/repository/notion"
	slackRepo "leave-calendar-sync/internal/leave/repository/slack"
	"leave-calendar-sync/internal/leave/usecase"
	"leave-calendar-sync/pkg/datemath"
	"leave-calendar-sync/pkg/gcalendar"
	"leave-calendar-sync/pkg/log"
)

// Leave holds the wired leave domain shared by the binaries.
type Leave struct {
	UseCase leave.UseCase
	Dates   *datemath.Parser
}

// NewLeave builds the parser, the selected record store, the Slack message
// source and the usecase. notifier may be nil.
func NewLeave(ctx context.Context, cfg *config.Config, l log.Logger, notifier leave.Notifier) (*Leave, error) {
	dates, err := datemath.NewParser(cfg.Sync.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid sync timezone: %w", err)
	}

	dupKey, err := leave.ParseDuplicateKey(cfg.Sync.DuplicateKey)
	if err != nil {
		return nil, err
	}

	records, err := NewRecordRepository(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	var messages repository.MessageRepository
	if cfg.Slack.Token != "" && cfg.Slack.ChannelID != "" {
		messages = slackRepo.New(slackRepo.NewClient(cfg.Slack.BaseURL, cfg.Slack.Token), cfg.Slack.ChannelID, l)
	} else {
		l.Warn(ctx, "SLACK_TOKEN or SLACK_CHANNEL_ID missing: history passes are disabled")
	}

	p := parser.New(dates, parser.DefaultLexicon().Merge(lexicon(cfg.Sync.Lexicon)))

	uc := usecase.New(l, records, messages, p, usecase.Options{
		DuplicateKey: dupKey,
		HistoryLimit: cfg.Sync.HistoryLimit,
		Notifier:     notifier,
	})

	return &Leave{UseCase: uc, Dates: dates}, nil
}

// NewRecordRepository returns the record store named by store.backend.
func NewRecordRepository(ctx context.Context, cfg *config.Config, l log.Logger) (repository.RecordRepository, error) {
	switch cfg.Store.Backend {
	case config.StoreNotion:
		client := notionRepo.NewClient(cfg.Notion.BaseURL, cfg.Notion.Token, cfg.Notion.Version)
		props := notionRepo.Properties{
			Title:  cfg.Notion.Properties.Title,
			Person: cfg.Notion.Properties.Person,
			Date:   cfg.Notion.Properties.Date,
			Kind:   cfg.Notion.Properties.Kind,
		}
		l.Infof(ctx, "Record store: notion database %s", cfg.Notion.DatabaseID)
		return notionRepo.New(client, cfg.Notion.DatabaseID, props, l), nil

	case config.StoreGCal:
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			return nil, fmt.Errorf("google calendar: %w (run scripts/gcal-auth to create the token)", err)
		}
		l.Infof(ctx, "Record store: google calendar %s", cfg.GoogleCalendar.CalendarID)
		return gcalRepo.New(client, cfg.GoogleCalendar.CalendarID, l), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func lexicon(c config.LexiconConfig) parser.Lexicon {
	return parser.Lexicon{
		Cancel:    c.Cancel,
		AllDay:    c.AllDay,
		Morning:   c.Morning,
		Afternoon: c.Afternoon,
		Half:      c.Half,
		Annual:    c.Annual,
	}
}
