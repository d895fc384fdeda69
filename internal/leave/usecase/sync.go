package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/parser"
	"leave-calendar-sync/internal/model"
	pkgLog "leave-calendar-sync/pkg/log"
)

// Report operations.
const (
	opFetch   = "fetch"
	opInput   = "input"
	opWrite   = "write"
	opArchive = "archive"
)

// RunOnce reads the recent message window oldest-first and reconciles every
// line. A fetch failure is reported and the pass ends with zero messages.
func (uc *implUseCase) RunOnce(ctx context.Context) leave.SyncReport {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ctx, report := uc.startReport(ctx)

	var msgs []model.Message
	if uc.messages == nil {
		report.Errors = append(report.Errors, leave.ReportError{Op: opFetch, Message: "no message source configured"})
	} else {
		fetched, err := uc.messages.FetchRecent(ctx, uc.historyLimit)
		if err != nil {
			uc.l.Errorf(ctx, "RunOnce: failed to fetch messages: %v", err)
			report.Errors = append(report.Errors, leave.ReportError{Op: opFetch, Message: err.Error()})
		} else {
			msgs = fetched
		}
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})

	report.Messages = len(msgs)
	texts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		texts = append(texts, m.Text)
	}
	uc.processWindow(ctx, texts, &report)

	uc.finishReport(ctx, &report)
	return report
}

// ProcessText reconciles a single message body, as pushed by Slack or
// posted over HTTP.
func (uc *implUseCase) ProcessText(ctx context.Context, text string) leave.SyncReport {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ctx, report := uc.startReport(ctx)

	if strings.TrimSpace(text) == "" {
		report.Errors = append(report.Errors, leave.ReportError{Op: opInput, Message: leave.ErrEmptyText.Error()})
	} else {
		report.Messages = 1
		uc.processWindow(ctx, []string{text}, &report)
	}

	uc.finishReport(ctx, &report)
	return report
}

func (uc *implUseCase) startReport(ctx context.Context) (context.Context, leave.SyncReport) {
	runID := uc.newRunID()
	ctx = pkgLog.WithRunID(ctx, runID)
	uc.l.Infof(ctx, "sync pass started")
	return ctx, leave.SyncReport{
		RunID:     runID,
		StartedAt: uc.now(),
		Errors:    []leave.ReportError{},
	}
}

func (uc *implUseCase) finishReport(ctx context.Context, report *leave.SyncReport) {
	report.FinishedAt = uc.now()
	uc.l.Infof(ctx, "sync pass finished: messages=%d lines=%d created=%d skipped=%d superseded=%d archived=%d unrecognized=%d errors=%d",
		report.Messages, report.Lines, report.Created, report.Skipped, report.Superseded, report.Archived, report.Unrecognized, len(report.Errors))

	if uc.notifier == nil || !report.Changed() {
		return
	}
	if err := uc.notifier.NotifySync(ctx, *report); err != nil {
		uc.l.Warnf(ctx, "sync pass: notification failed (non-fatal): %v", err)
	}
}

type parsedLine struct {
	text  string
	entry model.Entry
}

// processWindow parses every line of texts, in order, before touching the
// store. A create day that a later line of the same window cancels is
// dropped, so replaying the window cannot recreate what it also cancels.
func (uc *implUseCase) processWindow(ctx context.Context, texts []string, report *leave.SyncReport) {
	var lines []parsedLine
	for _, text := range texts {
		for _, line := range parser.SplitLines(text) {
			report.Lines++
			lines = append(lines, parsedLine{text: line, entry: uc.parser.Parse(line)})
		}
	}

	for i, pl := range lines {
		create, ok := pl.entry.(model.CreateEntry)
		if !ok {
			uc.routeLine(ctx, pl.text, pl.entry, report)
			continue
		}

		spans, dropped := supersede(create, lines[i+1:])
		if dropped > 0 {
			uc.l.Infof(ctx, "processWindow: %d day(s) of %q cancelled later in the window", dropped, pl.text)
			report.Superseded += dropped
		}
		for _, span := range spans {
			create.Dates = span
			uc.routeLine(ctx, pl.text, create, report)
		}
	}
}

// supersede returns the spans of create that no later cancellation covers,
// and the number of days it removed. Entries Write would reject are
// returned whole so the rejection still reaches the report.
func supersede(create model.CreateEntry, later []parsedLine) ([]model.DateSpan, int) {
	if strings.TrimSpace(create.Person) == "" || create.Dates.Validate() != nil {
		return []model.DateSpan{create.Dates}, 0
	}

	var (
		spans   []model.DateSpan
		dropped int
	)
	for _, day := range create.Dates.Days() {
		if cancelledLater(create, day, later) {
			dropped++
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].End.AddDate(0, 0, 1).Equal(day) {
			spans[n-1].End = day
			continue
		}
		spans = append(spans, model.SingleDay(day))
	}
	if dropped == 0 {
		return []model.DateSpan{create.Dates}, 0
	}
	return spans, dropped
}

func cancelledLater(create model.CreateEntry, day time.Time, later []parsedLine) bool {
	for _, pl := range later {
		c, ok := pl.entry.(model.CancelEntry)
		if ok && c.Covers(create.Person, create.Kind, day) {
			return true
		}
	}
	return false
}

// routeLine dispatches one parsed line to the writer or the archiver.
func (uc *implUseCase) routeLine(ctx context.Context, line string, entry model.Entry, report *leave.SyncReport) {
	switch e := entry.(type) {
	case model.CreateEntry:
		res := uc.Write(ctx, e)
		if res.Err != nil {
			report.Errors = append(report.Errors, leave.ReportError{Line: line, Op: opWrite, Message: res.Err.Error()})
			return
		}
		for _, d := range res.Days {
			switch d.Outcome {
			case leave.OutcomeCreated:
				report.Created++
			case leave.OutcomeSkippedDuplicate:
				report.Skipped++
			case leave.OutcomeFailed:
				report.Errors = append(report.Errors, leave.ReportError{
					Line:    line,
					Date:    model.FormatDate(d.Date),
					Op:      opWrite,
					Message: d.Err.Error(),
				})
			}
		}

	case model.CancelEntry:
		res, err := uc.Archive(ctx, e)
		if err != nil {
			uc.l.Warnf(ctx, "routeLine: cancellation rejected %q: %v", line, err)
			report.Errors = append(report.Errors, leave.ReportError{Line: line, Op: opArchive, Message: err.Error()})
			return
		}
		report.Archived += len(res.Archived)
		for _, archErr := range res.Errors {
			report.Errors = append(report.Errors, leave.ReportError{Line: line, Op: opArchive, Message: archErr.Error()})
		}

	case model.Unrecognized:
		uc.l.Debugf(ctx, "routeLine: ignoring %q: %v", line, e.Reason)
		report.Unrecognized++
	}
}
