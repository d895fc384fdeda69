package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/model"
)

// Write creates one record per day of entry.Dates. Each day is checked for a
// duplicate first and failures stay local to their day.
func (uc *implUseCase) Write(ctx context.Context, entry model.CreateEntry) leave.WriteResult {
	result := leave.WriteResult{Entry: entry}

	if strings.TrimSpace(entry.Person) == "" {
		result.Err = leave.ErrMissingPerson
		return result
	}
	if err := entry.Dates.Validate(); err != nil {
		result.Err = fmt.Errorf("%w: %s", leave.ErrInvertedRange, entry.Dates)
		return result
	}

	days := entry.Dates.Days()
	result.Days = make([]leave.DayResult, 0, len(days))
	for _, day := range days {
		result.Days = append(result.Days, uc.writeDay(ctx, entry, day))
	}

	uc.l.Infof(ctx, "Write: %s %s %s created=%d skipped=%d failed=%d",
		entry.Person, entry.Kind, entry.Dates,
		result.Count(leave.OutcomeCreated),
		result.Count(leave.OutcomeSkippedDuplicate),
		result.Count(leave.OutcomeFailed))
	return result
}

func (uc *implUseCase) writeDay(ctx context.Context, entry model.CreateEntry, day time.Time) leave.DayResult {
	res := leave.DayResult{Date: day}

	exists, err := uc.Exists(ctx, uc.existsInput(entry, day))
	if err != nil {
		uc.l.Errorf(ctx, "Write: duplicate check failed for %s on %s: %v", entry.Person, model.FormatDate(day), err)
		res.Outcome = leave.OutcomeFailed
		res.Err = err
		return res
	}
	if exists {
		uc.l.Debugf(ctx, "Write: %s already has a record on %s", entry.Person, model.FormatDate(day))
		res.Outcome = leave.OutcomeSkippedDuplicate
		return res
	}

	rec, err := uc.records.Create(ctx, repository.CreateOptions{
		Title:  model.RecordTitle(entry.Kind, entry.Person),
		Person: entry.Person,
		Date:   day,
		Kind:   entry.Kind,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Write: failed to create record for %s on %s: %v", entry.Person, model.FormatDate(day), err)
		res.Outcome = leave.OutcomeFailed
		res.Err = err
		return res
	}

	res.Outcome = leave.OutcomeCreated
	res.RecordID = rec.ID
	return res
}
