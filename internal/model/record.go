package model

import "time"

// Record is one leave record in the calendar store: one person, one day,
// one kind.
type Record struct {
	ID       string
	Title    string
	Person   string
	Date     time.Time
	Kind     LeaveKind
	Archived bool
	URL      string
}

// RecordTitle builds the display title "[{kind}] {person}".
func RecordTitle(kind LeaveKind, person string) string {
	return "[" + string(kind) + "] " + person
}
