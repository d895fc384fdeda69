package gcal

import (
	"context"
	"fmt"
	"time"

	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/model"
	"leave-calendar-sync/pkg/datemath"
	"leave-calendar-sync/pkg/gcalendar"
	pkgLog "leave-calendar-sync/pkg/log"
)

// Private extended property keys carried by every leave event.
const (
	PropSource = "leave_source"
	PropPerson = "leave_person"
	PropDate   = "leave_date"
	PropKind   = "leave_kind"

	sourceValue = "leave-calendar-sync"
)

// Calendar is the subset of gcalendar.Client the repository needs.
type Calendar interface {
	InsertAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type implRepository struct {
	calendar   Calendar
	calendarID string
	l          pkgLog.Logger
}

// New creates a Google Calendar backed record repository. Records are
// all-day events; deleting one leaves it in the calendar as cancelled.
func New(calendar Calendar, calendarID string, l pkgLog.Logger) repository.RecordRepository {
	return &implRepository{
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
	}
}

func (r *implRepository) Find(ctx context.Context, opt repository.FindOptions) ([]model.Record, error) {
	if opt.IsEmpty() {
		return nil, repository.ErrEmptyFind
	}

	private := map[string]string{PropSource: sourceValue}
	if opt.Person != "" {
		private[PropPerson] = opt.Person
	}
	if !opt.Date.IsZero() {
		private[PropDate] = model.FormatDate(opt.Date)
	}
	if opt.Kind != "" {
		private[PropKind] = string(opt.Kind)
	}

	events, err := r.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		Private:    private,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: find failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrQuery, err)
	}
	return r.toRecords(events), nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Record, error) {
	ev, err := r.calendar.InsertAllDayEvent(ctx, gcalendar.AllDayEventRequest{
		CalendarID: r.calendarID,
		Summary:    opt.Title,
		Date:       opt.Date,
		Private: map[string]string{
			PropSource: sourceValue,
			PropPerson: opt.Person,
			PropDate:   model.FormatDate(opt.Date),
			PropKind:   string(opt.Kind),
		},
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: failed to create event for %s on %s: %v", opt.Person, model.FormatDate(opt.Date), err)
		return model.Record{}, fmt.Errorf("%w: %w", repository.ErrWrite, err)
	}
	return toRecord(*ev), nil
}

func (r *implRepository) Archive(ctx context.Context, id string) error {
	if err := r.calendar.DeleteEvent(ctx, r.calendarID, id); err != nil {
		r.l.Errorf(ctx, "gcal repository: failed to archive event %s: %v", id, err)
		return fmt.Errorf("%w: %w", repository.ErrArchive, err)
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Record, error) {
	events, err := r.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    opt.From,
		TimeMax:    opt.To.AddDate(0, 0, 1),
		Private:    map[string]string{PropSource: sourceValue},
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: list failed: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrQuery, err)
	}

	// TimeMin/TimeMax select by overlap; keep only days inside the range.
	var records []model.Record
	for _, rec := range r.toRecords(events) {
		if rec.Date.Before(opt.From) || rec.Date.After(opt.To) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *implRepository) toRecords(events []gcalendar.Event) []model.Record {
	records := make([]model.Record, 0, len(events))
	for _, ev := range events {
		if ev.Status == gcalendar.StatusCancelled {
			continue
		}
		records = append(records, toRecord(ev))
	}
	return records
}

func toRecord(ev gcalendar.Event) model.Record {
	rec := model.Record{
		ID:       ev.ID,
		Title:    ev.Summary,
		URL:      ev.HtmlLink,
		Date:     ev.Date,
		Person:   ev.Private[PropPerson],
		Archived: ev.Status == gcalendar.StatusCancelled,
	}
	if d, err := time.Parse(datemath.ISOLayout, ev.Private[PropDate]); err == nil {
		rec.Date = d
	}
	if kind := model.LeaveKind(ev.Private[PropKind]); kind.Valid() {
		rec.Kind = kind
	}
	return rec
}
