package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	pkgLog "leave-calendar-sync/pkg/log"
)

// DefaultSpec runs a pass every ten minutes.
const DefaultSpec = "*/10 * * * *"

// Job is one scheduled run. ctx is the one passed to Start.
type Job func(ctx context.Context)

// Scheduler runs a Job on a cron schedule. A tick that fires while the
// previous run is still going is skipped.
type Scheduler struct {
	l    pkgLog.Logger
	cron *cron.Cron
	id   cron.EntryID
	job  Job

	mu  sync.RWMutex
	ctx context.Context
}

// New parses spec in the given timezone and registers job.
func New(l pkgLog.Logger, spec, timezone string, job Job) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	loc := time.UTC
	if timezone != "" {
		var err error
		if loc, err = time.LoadLocation(timezone); err != nil {
			return nil, fmt.Errorf("invalid scheduler timezone %q: %w", timezone, err)
		}
	}

	logger := cronLogger{l: l}
	s := &Scheduler{
		l:   l,
		job: job,
		ctx: context.Background(),
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.SkipIfStillRunning(logger), cron.Recover(logger)),
		),
	}

	id, err := s.cron.AddFunc(spec, s.run)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	s.id = id
	return s, nil
}

// Start begins firing the job in the background.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.cron.Start()
	s.l.Infof(ctx, "Scheduler started, next run at %s", s.Next().Format(time.RFC3339))
}

// Stop halts the schedule and waits for a running job to finish, or for
// ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.l.Infof(ctx, "Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}

// Trigger runs the job now, through the same skip-if-running chain as a
// scheduled tick. It blocks until the run ends or is skipped.
func (s *Scheduler) Trigger() {
	s.cron.Entry(s.id).WrappedJob.Run()
}

// Next returns the next scheduled run time, zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.id).Next
}

func (s *Scheduler) run() {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()
	s.job(ctx)
}

// cronLogger adapts pkgLog.Logger to cron.Logger.
type cronLogger struct {
	l pkgLog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorf(context.Background(), "cron: %s: %v %v", msg, err, keysAndValues)
}
