package repository

import (
	"time"

	"leave-calendar-sync/internal/model"
)

// FindOptions holds equality filters. Zero values are left out of the
// filter.
type FindOptions struct {
	Person string
	Date   time.Time
	Kind   model.LeaveKind
}

// IsEmpty reports whether no filter is set.
func (o FindOptions) IsEmpty() bool {
	return o.Person == "" && o.Date.IsZero() && o.Kind == ""
}

// CreateOptions holds the fields of a new record.
type CreateOptions struct {
	Title  string
	Person string
	Date   time.Time
	Kind   model.LeaveKind
}

// ListOptions bounds a listing by date, inclusive.
type ListOptions struct {
	From time.Time
	To   time.Time
}
