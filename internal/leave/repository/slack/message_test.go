package slack_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	slackapi "github.com/slack-go/slack"

	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/leave/repository/slack"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestSlackRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/conversations.history", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer xoxb-test" {
			w.Write([]byte(`{"ok":false,"error":"invalid_auth"}`))
			return
		}
		switch r.FormValue("channel") {
		case "C-LEAVE":
			if r.FormValue("limit") != "10" {
				t.Errorf("expected limit=10, got %q", r.FormValue("limit"))
			}
			w.Write([]byte(`{"ok":true,"messages":[
				{"type":"message","user":"U2","text":"Lee - 7월 19일 오후 반차","ts":"1721350800.000200"},
				{"type":"message","user":"U1","text":"","ts":"1721300000.000100"},
				{"type":"message","user":"U1","text":"Kim - 2024-07-18 &gt; all day","ts":"1721260800.000100"},
				{"type":"message","user":"U1","text":"broken","ts":"not-a-ts"}
			]}`))
		case "C-DOWN":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
		}
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := slack.NewClient(ts.URL, "xoxb-test")

	t.Run("FetchRecent decodes messages", func(t *testing.T) {
		repo := slack.New(client, "C-LEAVE", &mockLogger{})
		msgs, err := repo.FetchRecent(context.Background(), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(msgs))
		}
		if msgs[1].Text != "Kim - 2024-07-18 > all day" {
			t.Errorf("expected unescaped text, got %q", msgs[1].Text)
		}
		if !msgs[1].Timestamp.Before(msgs[0].Timestamp) {
			t.Errorf("timestamps out of order: %v, %v", msgs[1].Timestamp, msgs[0].Timestamp)
		}
	})

	t.Run("ok=false is a transport error", func(t *testing.T) {
		repo := slack.New(client, "C-MISSING", &mockLogger{})
		_, err := repo.FetchRecent(context.Background(), 10)
		if !errors.Is(err, repository.ErrTransport) {
			t.Fatalf("expected ErrTransport, got %v", err)
		}
		var apiErr slackapi.SlackErrorResponse
		if !errors.As(err, &apiErr) || apiErr.Err != "channel_not_found" {
			t.Errorf("expected channel_not_found, got %v", err)
		}
	})

	t.Run("Non-200 status", func(t *testing.T) {
		repo := slack.New(client, "C-DOWN", &mockLogger{})
		_, err := repo.FetchRecent(context.Background(), 10)
		var statusErr slackapi.StatusCodeError
		if !errors.As(err, &statusErr) || statusErr.Code != http.StatusBadGateway {
			t.Errorf("expected 502 status error, got %v", err)
		}
	})

	t.Run("Bad token", func(t *testing.T) {
		repo := slack.New(slack.NewClient(ts.URL, "wrong"), "C-LEAVE", &mockLogger{})
		if _, err := repo.FetchRecent(context.Background(), 10); !errors.Is(err, repository.ErrTransport) {
			t.Errorf("expected ErrTransport, got %v", err)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		repo := slack.New(slack.NewClient("http://127.0.0.1:0", "xoxb-test"), "C-LEAVE", &mockLogger{})
		if _, err := repo.FetchRecent(context.Background(), 10); !errors.Is(err, repository.ErrTransport) {
			t.Errorf("expected ErrTransport, got %v", err)
		}
	})
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		ts      string
		want    time.Time
		wantErr bool
	}{
		{name: "Whole seconds", ts: "1721260800", want: time.Date(2024, 7, 18, 0, 0, 0, 0, time.UTC)},
		{name: "Micro suffix", ts: "1721260800.000200", want: time.Date(2024, 7, 18, 0, 0, 0, 200000, time.UTC)},
		{name: "Garbage", ts: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := slack.ParseTimestamp(tt.ts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
