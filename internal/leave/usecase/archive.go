package usecase

import (
	"context"
	"fmt"
	"strings"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/model"
)

// Archive soft-deletes every active record matching the cancellation. The
// entry is validated before the first search. Search and archive failures
// are collected in the result and do not stop the remaining work.
func (uc *implUseCase) Archive(ctx context.Context, entry model.CancelEntry) (leave.ArchiveResult, error) {
	result := leave.ArchiveResult{Entry: entry}

	if strings.TrimSpace(entry.Person) == "" {
		return result, leave.ErrMissingPerson
	}
	if entry.DateInvalid {
		return result, leave.ErrUnresolvedDate
	}
	if entry.Dates != nil {
		if err := entry.Dates.Validate(); err != nil {
			return result, fmt.Errorf("%w: %s", leave.ErrInvertedRange, entry.Dates)
		}
	}

	seen := make(map[string]bool)
	for _, opt := range cancelSearches(entry) {
		result.Searches++
		records, err := uc.records.Find(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "Archive: search failed for %s: %v", entry.Person, err)
			result.Errors = append(result.Errors, fmt.Errorf("search %s: %w", searchLabel(opt), err))
			continue
		}

		for _, rec := range records {
			if rec.Archived || seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true

			if err := uc.records.Archive(ctx, rec.ID); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("archive %s: %w", rec.ID, err))
				continue
			}
			result.Archived = append(result.Archived, rec.ID)
		}
	}

	uc.l.Infof(ctx, "Archive: %s searches=%d archived=%d errors=%d",
		entry.Person, result.Searches, len(result.Archived), len(result.Errors))
	return result, nil
}

// cancelSearches returns one filter per day of the entry, or a single
// person/kind filter when the entry carries no dates.
func cancelSearches(entry model.CancelEntry) []repository.FindOptions {
	base := repository.FindOptions{Person: entry.Person}
	if entry.Kind != nil {
		base.Kind = *entry.Kind
	}
	if entry.Dates == nil {
		return []repository.FindOptions{base}
	}

	days := entry.Dates.Days()
	opts := make([]repository.FindOptions, 0, len(days))
	for _, day := range days {
		opt := base
		opt.Date = day
		opts = append(opts, opt)
	}
	return opts
}

func searchLabel(opt repository.FindOptions) string {
	if opt.Date.IsZero() {
		return opt.Person
	}
	return opt.Person + "@" + model.FormatDate(opt.Date)
}
