package repository

import (
	"context"

	"leave-calendar-sync/internal/model"
)

// RecordRepository is the calendar store holding leave records.
type RecordRepository interface {
	// Find returns active records matching every non-empty option.
	Find(ctx context.Context, opt FindOptions) ([]model.Record, error)
	Create(ctx context.Context, opt CreateOptions) (model.Record, error)
	// Archive soft-deletes a record. Archived records drop out of Find.
	Archive(ctx context.Context, id string) error
	// List returns active records dated within [From, To].
	List(ctx context.Context, opt ListOptions) ([]model.Record, error)
}

// MessageRepository is the chat channel leave notifications are posted to.
type MessageRepository interface {
	// FetchRecent returns at most limit of the latest messages, in the order
	// the chat platform returns them.
	FetchRecent(ctx context.Context, limit int) ([]model.Message, error)
}
