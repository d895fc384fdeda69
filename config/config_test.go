package config_test

import (
	"strings"
	"testing"

	"github.com/spf13/viper"

	"leave-calendar-sync/config"
)

func load(t *testing.T, yaml string) *config.Config {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	return config.FromViper(v)
}

func TestDefaults(t *testing.T) {
	cfg := load(t, "")

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Store.Backend != config.StoreNotion {
		t.Errorf("backend = %q, want notion", cfg.Store.Backend)
	}
	if cfg.Sync.HistoryLimit != 10 {
		t.Errorf("history_limit = %d, want 10", cfg.Sync.HistoryLimit)
	}
	if cfg.Sync.Schedule != "*/10 * * * *" {
		t.Errorf("schedule = %q", cfg.Sync.Schedule)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" {
		t.Errorf("calendar_id = %q", cfg.GoogleCalendar.CalendarID)
	}
}

func TestFileValues(t *testing.T) {
	cfg := load(t, `
store:
  backend: GCal
notion:
  properties:
    person: Owner
sync:
  history_limit: 25
  lexicon:
    cancel: [취소, 철회]
webhook:
  allowed_ips: [10.0.0.0/8, 127.0.0.1]
telegram:
  chat_id: -100123
`)

	if cfg.Store.Backend != config.StoreGCal {
		t.Errorf("backend = %q, want gcal", cfg.Store.Backend)
	}
	if cfg.Notion.Properties.Person != "Owner" {
		t.Errorf("person property = %q", cfg.Notion.Properties.Person)
	}
	if cfg.Sync.HistoryLimit != 25 {
		t.Errorf("history_limit = %d", cfg.Sync.HistoryLimit)
	}
	if got := cfg.Sync.Lexicon.Cancel; len(got) != 2 || got[1] != "철회" {
		t.Errorf("lexicon.cancel = %v", got)
	}
	if got := cfg.Webhook.AllowedIPs; len(got) != 2 {
		t.Errorf("allowed_ips = %v", got)
	}
	if cfg.Telegram.ChatID != -100123 {
		t.Errorf("chat_id = %d", cfg.Telegram.ChatID)
	}
}

func TestFlatEnvOverrides(t *testing.T) {
	t.Setenv("SLACK_TOKEN", "xoxb-env")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("NOTION_TOKEN", "secret_env")
	t.Setenv("NOTION_DATABASE_ID", "db-env")
	t.Setenv("SLACK_SIGNING_SECRET", "sign-env")
	t.Setenv("WEBHOOK_ALLOWED_IPS", "1.2.3.4, 5.6.7.8")
	t.Setenv("INTERNAL_KEY", "key-env")

	cfg := load(t, `
slack:
  token: from-file
notion:
  token: from-file
`)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"slack token", cfg.Slack.Token, "xoxb-env"},
		{"slack channel", cfg.Slack.ChannelID, "C123"},
		{"notion token", cfg.Notion.Token, "secret_env"},
		{"notion database", cfg.Notion.DatabaseID, "db-env"},
		{"signing secret", cfg.Slack.SigningSecret, "sign-env"},
		{"internal key", cfg.HTTPServer.InternalKey, "key-env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}

	if got := cfg.Webhook.AllowedIPs; len(got) != 2 || got[1] != "5.6.7.8" {
		t.Errorf("allowed_ips = %v", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Store:  config.StoreConfig{Backend: config.StoreNotion},
			Notion: config.NotionConfig{Token: "t", DatabaseID: "d"},
			Sync:   config.SyncConfig{HistoryLimit: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid notion", mutate: func(c *config.Config) {}},
		{
			name:    "missing notion token",
			mutate:  func(c *config.Config) { c.Notion.Token = "" },
			wantErr: "NOTION_TOKEN",
		},
		{
			name:    "missing database id",
			mutate:  func(c *config.Config) { c.Notion.DatabaseID = "" },
			wantErr: "NOTION_DATABASE_ID",
		},
		{
			name: "valid gcal",
			mutate: func(c *config.Config) {
				c.Store.Backend = config.StoreGCal
				c.GoogleCalendar.CredentialsPath = "credentials.json"
			},
		},
		{
			name:    "gcal without credentials",
			mutate:  func(c *config.Config) { c.Store.Backend = config.StoreGCal },
			wantErr: "credentials_path",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *config.Config) { c.Store.Backend = "sqlite" },
			wantErr: "store.backend",
		},
		{
			name:    "non-positive history limit",
			mutate:  func(c *config.Config) { c.Sync.HistoryLimit = 0 },
			wantErr: "history_limit",
		},
		{
			name:    "production without internal key",
			mutate:  func(c *config.Config) { c.Environment.Name = config.EnvironmentProduction },
			wantErr: "INTERNAL_KEY",
		},
		{
			name: "production with internal key",
			mutate: func(c *config.Config) {
				c.Environment.Name = config.EnvironmentProduction
				c.HTTPServer.InternalKey = "k"
			},
		},
		{
			name:    "webhook without signing secret",
			mutate:  func(c *config.Config) { c.Webhook.Enabled = true },
			wantErr: "SLACK_SIGNING_SECRET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
