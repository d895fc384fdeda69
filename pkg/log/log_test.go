package log_test

import (
	"context"
	"testing"

	"leave-calendar-sync/pkg/log"
)

func TestRunIDContext(t *testing.T) {
	ctx := context.Background()
	if got := log.RunIDFromContext(ctx); got != "" {
		t.Errorf("expected empty run id, got %q", got)
	}

	ctx = log.WithRunID(ctx, "run-1")
	if got := log.RunIDFromContext(ctx); got != "run-1" {
		t.Errorf("expected run-1, got %q", got)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := log.WithRequestID(log.WithRunID(context.Background(), "run-1"), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RunIDFromContext(ctx); got != "run-1" {
		t.Errorf("run id lost, got %q", got)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "development console", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "unknown level", cfg: log.ZapConfig{Level: "loud", Encoding: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := log.WithRunID(context.Background(), "run-1")
			l.Infof(ctx, "hello %s", "world")
			l.Debug(ctx, "debug line")
		})
	}

	log.NewNop().Error(context.Background(), "discarded")
}
