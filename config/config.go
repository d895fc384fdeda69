package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvironmentProduction is the environment name of live deployments.
const EnvironmentProduction = "production"

// Store backends.
const (
	StoreNotion = "notion"
	StoreGCal   = "gcal"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat source and stores
	Slack          SlackConfig
	Notion         NotionConfig
	GoogleCalendar GoogleCalendarConfig
	Store          StoreConfig

	// Sync passes
	Sync SyncConfig

	// Notifications
	Telegram TelegramConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// InternalKey guards the routes that write to the store. Empty leaves
	// them open, which Validate refuses in production.
	InternalKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SlackConfig struct {
	BaseURL       string
	Token         string
	ChannelID     string
	SigningSecret string
}

type NotionConfig struct {
	BaseURL    string
	Token      string
	DatabaseID string
	Version    string
	Properties NotionPropertiesConfig
}

// NotionPropertiesConfig names the database columns. Empty names keep the
// defaults of the notion repository.
type NotionPropertiesConfig struct {
	Title  string
	Person string
	Date   string
	Kind   string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type StoreConfig struct {
	Backend string // notion | gcal
}

type SyncConfig struct {
	Schedule     string // cron spec; "off" disables the scheduler
	Timezone     string
	HistoryLimit int
	DuplicateKey string
	Lexicon      LexiconConfig
}

// LexiconConfig overrides the parser keyword lists. Empty lists keep the
// built-in words.
type LexiconConfig struct {
	Cancel    []string
	AllDay    []string
	Morning   []string
	Afternoon []string
	Half      []string
	Annual    []string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type WebhookConfig struct {
	Enabled         bool
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/leave-sync/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/leave-sync/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance. Env
// lookup and defaults are applied here.
func FromViper(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.InternalKey = override(v, "http_server.internal_key", "internal_key")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Slack
	cfg.Slack.BaseURL = v.GetString("slack.base_url")
	cfg.Slack.Token = override(v, "slack.token", "slack_token")
	cfg.Slack.ChannelID = override(v, "slack.channel_id", "slack_channel_id")
	cfg.Slack.SigningSecret = override(v, "slack.signing_secret", "slack_signing_secret")

	// Notion
	cfg.Notion.BaseURL = v.GetString("notion.base_url")
	cfg.Notion.Token = override(v, "notion.token", "notion_token")
	cfg.Notion.DatabaseID = override(v, "notion.database_id", "notion_database_id")
	cfg.Notion.Version = v.GetString("notion.version")
	cfg.Notion.Properties.Title = v.GetString("notion.properties.title")
	cfg.Notion.Properties.Person = v.GetString("notion.properties.person")
	cfg.Notion.Properties.Date = v.GetString("notion.properties.date")
	cfg.Notion.Properties.Kind = v.GetString("notion.properties.kind")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = override(v, "google_calendar.credentials_path", "google_calendar_credentials")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	cfg.Store.Backend = strings.ToLower(v.GetString("store.backend"))

	// Sync
	cfg.Sync.Schedule = v.GetString("sync.schedule")
	cfg.Sync.Timezone = v.GetString("sync.timezone")
	cfg.Sync.HistoryLimit = v.GetInt("sync.history_limit")
	cfg.Sync.DuplicateKey = v.GetString("sync.duplicate_key")
	cfg.Sync.Lexicon.Cancel = stringList(v, "sync.lexicon.cancel")
	cfg.Sync.Lexicon.AllDay = stringList(v, "sync.lexicon.all_day")
	cfg.Sync.Lexicon.Morning = stringList(v, "sync.lexicon.morning")
	cfg.Sync.Lexicon.Afternoon = stringList(v, "sync.lexicon.afternoon")
	cfg.Sync.Lexicon.Half = stringList(v, "sync.lexicon.half")
	cfg.Sync.Lexicon.Annual = stringList(v, "sync.lexicon.annual")

	// Telegram
	cfg.Telegram.BotToken = override(v, "telegram.bot_token", "telegram_bot_token")
	cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")

	// Webhooks
	cfg.Webhook.Enabled = v.GetBool("webhook.enabled")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = stringList(v, "webhook.allowed_ips")

	return cfg
}

// Validate reports missing settings for the selected store backend.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case StoreNotion:
		if c.Notion.Token == "" {
			errs = append(errs, errors.New("notion.token (NOTION_TOKEN) is required"))
		}
		if c.Notion.DatabaseID == "" {
			errs = append(errs, errors.New("notion.database_id (NOTION_DATABASE_ID) is required"))
		}
	case StoreGCal:
		if c.GoogleCalendar.CredentialsPath == "" {
			errs = append(errs, errors.New("google_calendar.credentials_path is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend must be %q or %q, got %q", StoreNotion, StoreGCal, c.Store.Backend))
	}

	if c.Sync.HistoryLimit <= 0 {
		errs = append(errs, errors.New("sync.history_limit must be positive"))
	}
	if c.Environment.Name == EnvironmentProduction && c.HTTPServer.InternalKey == "" {
		errs = append(errs, errors.New("http_server.internal_key (INTERNAL_KEY) is required in production"))
	}
	if c.Webhook.Enabled && c.Slack.SigningSecret == "" {
		errs = append(errs, errors.New("slack.signing_secret (SLACK_SIGNING_SECRET) is required when webhook.enabled"))
	}

	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("store.backend", StoreNotion)
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("sync.schedule", "*/10 * * * *")
	v.SetDefault("sync.timezone", "Asia/Seoul")
	v.SetDefault("sync.history_limit", 10)
	v.SetDefault("sync.duplicate_key", "person_date_kind")
	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("webhook.enabled", false)
}

// override returns the flat env value when set, otherwise the nested key.
func override(v *viper.Viper, key, flat string) string {
	if val := v.GetString(flat); val != "" {
		return val
	}
	return v.GetString(key)
}

// stringList reads a YAML list or a comma separated env value.
func stringList(v *viper.Viper, key string) []string {
	var raw []string
	switch val := v.Get(key).(type) {
	case nil:
		return nil
	case string:
		raw = strings.Split(val, ",")
	default:
		raw = v.GetStringSlice(key)
	}

	var out []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
