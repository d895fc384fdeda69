package leave

import (
	"fmt"
	"time"

	"leave-calendar-sync/internal/model"
)

// DuplicateKey selects which record fields make two records "the same" for
// the duplicate check on the creation path.
type DuplicateKey string

const (
	DuplicateKeyDate           DuplicateKey = "date"
	DuplicateKeyPersonDate     DuplicateKey = "person_date"
	DuplicateKeyPersonDateKind DuplicateKey = "person_date_kind"
)

// ParseDuplicateKey validates a policy name. Empty means person_date_kind.
func ParseDuplicateKey(s string) (DuplicateKey, error) {
	switch DuplicateKey(s) {
	case "":
		return DuplicateKeyPersonDateKind, nil
	case DuplicateKeyDate, DuplicateKeyPersonDate, DuplicateKeyPersonDateKind:
		return DuplicateKey(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// ExistsInput is the input of the duplicate check. Empty Person or Kind
// widen the match.
type ExistsInput struct {
	Date   time.Time
	Person string
	Kind   model.LeaveKind
}

// DayOutcome is what happened to one day of a creation.
type DayOutcome string

const (
	OutcomeCreated          DayOutcome = "created"
	OutcomeSkippedDuplicate DayOutcome = "skipped_duplicate"
	OutcomeFailed           DayOutcome = "failed"
)

// DayResult reports one day of a WriteResult.
type DayResult struct {
	Date     time.Time
	Outcome  DayOutcome
	RecordID string
	Err      error
}

// WriteResult reports every day of a CreateEntry. Days are independent:
// a failed day does not stop the next one.
type WriteResult struct {
	Entry model.CreateEntry
	Days  []DayResult
	Err   error // set when the entry was rejected before any day ran
}

// Count returns how many days ended with outcome.
func (r WriteResult) Count(outcome DayOutcome) int {
	n := 0
	for _, d := range r.Days {
		if d.Outcome == outcome {
			n++
		}
	}
	return n
}

// ArchiveResult reports a cancellation.
type ArchiveResult struct {
	Entry    model.CancelEntry
	Searches int      // store searches issued
	Archived []string // ids of archived records
	Errors   []error  // per-search or per-record failures
}

// CalendarInput bounds a Calendar listing.
type CalendarInput struct {
	From time.Time
	To   time.Time
}

// ReportError is one failure inside a pass.
type ReportError struct {
	Line    string `json:"line,omitempty" yaml:"line,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Op      string `json:"op" yaml:"op"`
	Message string `json:"message" yaml:"message"`
}

// SyncReport aggregates one pass.
type SyncReport struct {
	RunID        string        `json:"run_id" yaml:"run_id"`
	StartedAt    time.Time     `json:"started_at" yaml:"started_at"`
	FinishedAt   time.Time     `json:"finished_at" yaml:"finished_at"`
	Messages     int           `json:"messages" yaml:"messages"`
	Lines        int           `json:"lines" yaml:"lines"`
	Created      int           `json:"created" yaml:"created"`
	Skipped      int           `json:"skipped" yaml:"skipped"`
	Superseded   int           `json:"superseded" yaml:"superseded"` // create days cancelled later in the same pass
	Archived     int           `json:"archived" yaml:"archived"`
	Unrecognized int           `json:"unrecognized" yaml:"unrecognized"`
	Errors       []ReportError `json:"errors" yaml:"errors"`
}

// Changed reports whether the pass wrote anything or hit an error.
func (r SyncReport) Changed() bool {
	return r.Created > 0 || r.Archived > 0 || len(r.Errors) > 0
}

// ParsedLine is the dry-run view of one parsed line.
type ParsedLine struct {
	Line   string `json:"line"`
	Type   string `json:"type"` // create, cancel, unrecognized
	Person string `json:"person,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Dates  string `json:"dates,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Entry types as reported in ParsedLine.Type.
const (
	EntryTypeCreate       = "create"
	EntryTypeCancel       = "cancel"
	EntryTypeUnrecognized = "unrecognized"
)
