package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"leave-calendar-sync/config"
	"leave-calendar-sync/pkg/gcalendar"
	"leave-calendar-sync/pkg/log"
)

// main authorizes the gcal store backend once and checks that the configured
// calendar is reachable with the result.
//
// Usage:
//
//	go run ./scripts/gcal-auth                        # paths from config.yaml
//	go run ./scripts/gcal-auth -credentials c.json -token t.json
//
// Service account credentials need no token; the script only verifies them.
func main() {
	credsFlag := flag.String("credentials", "", "OAuth or service account JSON (default google_calendar.credentials_path)")
	tokenFlag := flag.String("token", "", "where to write the OAuth token (default google_calendar.token_path)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	credsPath, tokenPath := resolvePaths(cfg.GoogleCalendar, *credsFlag, *tokenFlag)
	if credsPath == "" {
		logger.Fatalf(ctx, "No credentials file: set google_calendar.credentials_path or pass -credentials")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	if _, err := google.JWTConfigFromJSON(data, calendar.CalendarScope); err == nil {
		logger.Infof(ctx, "%s is a service account key, no token needed", credsPath)
	} else {
		oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarScope)
		if err != nil {
			logger.Fatalf(ctx, "Failed to parse %q as OAuth Desktop App credentials: %v", credsPath, err)
		}
		tok, err := authorize(ctx, oauthConfig, os.Stdin, os.Stdout)
		if err != nil {
			logger.Fatalf(ctx, "Authorization failed: %v", err)
		}
		if err := saveToken(tokenPath, tok); err != nil {
			logger.Fatalf(ctx, "Failed to save token: %v", err)
		}
		logger.Infof(ctx, "Token saved to %s", tokenPath)
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath, tokenPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to build calendar client: %v", err)
	}
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		TimeMin:    time.Now(),
		MaxResults: 1,
	})
	if err != nil {
		logger.Fatalf(ctx, "Calendar %q is not reachable: %v", cfg.GoogleCalendar.CalendarID, err)
	}
	logger.Infof(ctx, "Calendar %q reachable (%d upcoming event(s) sampled). Set store.backend to gcal.",
		cfg.GoogleCalendar.CalendarID, len(events))
}

// resolvePaths prefers the flags over the google_calendar section.
func resolvePaths(gc config.GoogleCalendarConfig, credsFlag, tokenFlag string) (string, string) {
	creds, token := gc.CredentialsPath, gc.TokenPath
	if credsFlag != "" {
		creds = credsFlag
	}
	if tokenFlag != "" {
		token = tokenFlag
	}
	if token == "" {
		token = "token.json"
	}
	return creds, token
}

// authorize prints the consent URL to out and exchanges the code read from in.
func authorize(ctx context.Context, oc *oauth2.Config, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	fmt.Fprintf(out, "Open this URL, sign in with the account that owns the leave calendar:\n\n%s\n\n",
		oc.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprint(out, "Paste the authorization code and press Enter: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && code == "" {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty authorization code")
	}

	tok, err := oc.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

func saveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
