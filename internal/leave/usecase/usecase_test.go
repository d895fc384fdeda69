package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/parser"
	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/leave/usecase"
	"leave-calendar-sync/internal/model"
	"leave-calendar-sync/pkg/datemath"
)

// mock dependencies

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

// mockRecords is an in-memory store. Find applies every non-empty filter
// and never returns archived records.
type mockRecords struct {
	records  []model.Record
	finds    int
	creates  int
	archives int

	findErr    map[string]error // keyed by date
	createErr  map[string]error // keyed by date
	archiveErr map[string]error // keyed by id
	listErr    error
}

func (m *mockRecords) Find(ctx context.Context, opt repository.FindOptions) ([]model.Record, error) {
	m.finds++
	if err := m.findErr[model.FormatDate(opt.Date)]; err != nil {
		return nil, err
	}
	var out []model.Record
	for _, r := range m.records {
		if r.Archived {
			continue
		}
		if opt.Person != "" && r.Person != opt.Person {
			continue
		}
		if !opt.Date.IsZero() && !r.Date.Equal(opt.Date) {
			continue
		}
		if opt.Kind != "" && r.Kind != opt.Kind {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRecords) Create(ctx context.Context, opt repository.CreateOptions) (model.Record, error) {
	m.creates++
	if err := m.createErr[model.FormatDate(opt.Date)]; err != nil {
		return model.Record{}, err
	}
	rec := model.Record{
		ID:     fmt.Sprintf("rec-%d", len(m.records)+1),
		Title:  opt.Title,
		Person: opt.Person,
		Date:   opt.Date,
		Kind:   opt.Kind,
	}
	m.records = append(m.records, rec)
	return rec, nil
}

func (m *mockRecords) Archive(ctx context.Context, id string) error {
	m.archives++
	if err := m.archiveErr[id]; err != nil {
		return err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Archived = true
			return nil
		}
	}
	return errors.New("not found")
}

func (m *mockRecords) List(ctx context.Context, opt repository.ListOptions) ([]model.Record, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Record
	for _, r := range m.records {
		if !r.Archived && !r.Date.Before(opt.From) && !r.Date.After(opt.To) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRecords) active() int {
	n := 0
	for _, r := range m.records {
		if !r.Archived {
			n++
		}
	}
	return n
}

type mockMessages struct {
	messages []model.Message
	err      error
	limit    int
}

func (m *mockMessages) FetchRecent(ctx context.Context, limit int) ([]model.Message, error) {
	m.limit = limit
	return m.messages, m.err
}

type mockNotifier struct {
	reports []leave.SyncReport
	err     error
}

func (m *mockNotifier) NotifySync(ctx context.Context, report leave.SyncReport) error {
	m.reports = append(m.reports, report)
	return m.err
}

func newParser(t *testing.T) *parser.Parser {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := parser.New(dates, parser.DefaultLexicon())
	p.SetClock(func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) })
	return p
}

func newUseCase(t *testing.T, records *mockRecords, messages repository.MessageRepository, opt usecase.Options) leave.UseCase {
	t.Helper()
	return usecase.New(&mockLogger{}, records, messages, newParser(t), opt)
}

func day(d int) time.Time {
	return time.Date(2024, 7, d, 0, 0, 0, 0, time.UTC)
}

func span(from, to int) model.DateSpan {
	return model.DateSpan{Start: day(from), End: day(to)}
}

func kindPtr(k model.LeaveKind) *model.LeaveKind { return &k }

func msg(text string, minute int) model.Message {
	return model.Message{Text: text, Timestamp: time.Date(2024, 7, 1, 9, minute, 0, 0, time.UTC)}
}
