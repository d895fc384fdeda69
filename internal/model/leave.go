package model

import (
	"errors"
	"time"

	"leave-calendar-sync/pkg/datemath"
)

// LeaveKind is the kind of a leave entry. The values double as the store's
// select option names.
type LeaveKind string

const (
	KindFullDay       LeaveKind = "연차"
	KindMorningHalf   LeaveKind = "오전반차"
	KindAfternoonHalf LeaveKind = "오후반차"
)

// Valid reports whether k is one of the known kinds.
func (k LeaveKind) Valid() bool {
	switch k {
	case KindFullDay, KindMorningHalf, KindAfternoonHalf:
		return true
	}
	return false
}

// IsHalfDay reports whether k covers only part of a day.
func (k LeaveKind) IsHalfDay() bool {
	return k == KindMorningHalf || k == KindAfternoonHalf
}

// ErrInvertedSpan is returned by DateSpan.Validate when Start is after End.
var ErrInvertedSpan = errors.New("date span start is after end")

// DateSpan is a single day (Start == End) or an inclusive range of days.
// Both ends are UTC midnight.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// SingleDay returns the span covering only d.
func SingleDay(d time.Time) DateSpan {
	return DateSpan{Start: d, End: d}
}

// IsRange reports whether the span covers more than one day.
func (s DateSpan) IsRange() bool {
	return !s.Start.Equal(s.End)
}

// Validate checks Start <= End.
func (s DateSpan) Validate() error {
	if s.Start.After(s.End) {
		return ErrInvertedSpan
	}
	return nil
}

// Days expands the span into one entry per calendar day. An inverted span
// expands to nothing.
func (s DateSpan) Days() []time.Time {
	return datemath.Days(s.Start, s.End)
}

// String renders the span as "YYYY-MM-DD" or "YYYY-MM-DD~YYYY-MM-DD".
func (s DateSpan) String() string {
	if !s.IsRange() {
		return FormatDate(s.Start)
	}
	return FormatDate(s.Start) + "~" + FormatDate(s.End)
}

// FormatDate renders d in the store's ISO layout.
func FormatDate(d time.Time) string {
	return d.Format(datemath.ISOLayout)
}
