package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"leave-calendar-sync/internal/scheduler"
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

func TestNew(t *testing.T) {
	noop := func(ctx context.Context) {}

	tests := []struct {
		name     string
		spec     string
		timezone string
		wantErr  bool
	}{
		{name: "Default spec", spec: "", timezone: "Asia/Seoul"},
		{name: "Descriptor", spec: "@hourly", timezone: ""},
		{name: "Bad spec", spec: "every ten minutes", wantErr: true},
		{name: "Bad timezone", spec: "*/5 * * * *", timezone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheduler.New(&mockLogger{}, tt.spec, tt.timezone, noop)
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTriggerSkipsOverlap(t *testing.T) {
	var runs int32
	started := make(chan struct{})
	release := make(chan struct{})

	s, err := scheduler.New(&mockLogger{}, "@every 1h", "UTC", func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
		close(started)
		<-release
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		s.Trigger()
		close(done)
	}()
	<-started

	// The first run is still blocked; this one must be skipped.
	s.Trigger()
	if got := atomic.LoadInt32(&runs); got != 1 {
		t.Errorf("expected 1 run while busy, got %d", got)
	}

	close(release)
	<-done
}

func TestStartStop(t *testing.T) {
	var runs int32
	s, err := scheduler.New(&mockLogger{}, "@every 1h", "UTC", func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Start(context.Background())
	if s.Next().IsZero() {
		t.Errorf("expected a next run time after Start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Errorf("unexpected stop error: %v", err)
	}
	if atomic.LoadInt32(&runs) != 0 {
		t.Errorf("hourly job should not have fired")
	}
}
