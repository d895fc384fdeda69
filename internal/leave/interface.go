package leave

import (
	"context"

	"leave-calendar-sync/internal/model"
)

// UseCase reconciles leave notifications with the calendar store.
type UseCase interface {
	// RunOnce fetches the recent message window and reconciles every line in it.
	RunOnce(ctx context.Context) SyncReport

	// ProcessText reconciles a single pushed message body.
	ProcessText(ctx context.Context, text string) SyncReport

	// Preview parses text without touching the store.
	Preview(text string) []ParsedLine

	// Exists reports whether an active record matches the input.
	Exists(ctx context.Context, input ExistsInput) (bool, error)

	// Write creates one record per day of the entry, skipping duplicates.
	Write(ctx context.Context, entry model.CreateEntry) WriteResult

	// Archive soft-deletes every record matching the cancellation.
	Archive(ctx context.Context, entry model.CancelEntry) (ArchiveResult, error)

	// Calendar lists active records between two days inclusive.
	Calendar(ctx context.Context, input CalendarInput) ([]model.Record, error)
}

// Notifier receives a summary after a pass.
type Notifier interface {
	NotifySync(ctx context.Context, report SyncReport) error
}
