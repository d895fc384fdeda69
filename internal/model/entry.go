package model

import (
	"strings"
	"time"
)

// Message is one chat message as fetched from the chat source.
type Message struct {
	Text      string
	Timestamp time.Time
}

// Entry is the result of parsing one line. It is one of CreateEntry,
// CancelEntry or Unrecognized.
type Entry interface {
	isEntry()
}

// CreateEntry asks for one record per day of Dates.
type CreateEntry struct {
	Person string
	Kind   LeaveKind
	Dates  DateSpan
}

// CancelEntry asks for matching records to be archived. A nil Kind or Dates
// widens the match.
type CancelEntry struct {
	Person string
	Kind   *LeaveKind
	Dates  *DateSpan
	// DateInvalid is set when the line carried a date phrase that failed to
	// normalize. Dates is nil in that case.
	DateInvalid bool
}

// Covers reports whether the cancellation archives a record of person and
// kind on day. Entries that Archive rejects cover nothing.
func (c CancelEntry) Covers(person string, kind LeaveKind, day time.Time) bool {
	if c.DateInvalid || strings.TrimSpace(c.Person) == "" || c.Person != person {
		return false
	}
	if c.Kind != nil && *c.Kind != kind {
		return false
	}
	if c.Dates == nil {
		return true
	}
	if c.Dates.Validate() != nil {
		return false
	}
	return !day.Before(c.Dates.Start) && !day.After(c.Dates.End)
}

// Unrecognized is a line that matched no pattern.
type Unrecognized struct {
	Line   string
	Reason error
}

func (CreateEntry) isEntry()  {}
func (CancelEntry) isEntry()  {}
func (Unrecognized) isEntry() {}
