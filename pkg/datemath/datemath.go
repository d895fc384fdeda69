// Package datemath normalizes the date phrases found in leave notifications
// into canonical ISO calendar dates.
package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISOLayout is the canonical date layout used by the store.
const ISOLayout = "2006-01-02"

// ErrInvalidDate is returned when a phrase is neither an ISO date nor a
// "<m>월 <d>일" phrase, or names a day that does not exist.
var ErrInvalidDate = errors.New("invalid date")

var (
	isoPattern       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthDayPattern  = regexp.MustCompile(`^(\d{1,2})\s*월\s*(\d{1,2})\s*일$`)
	datePhrasePieces = `\d{4}-\d{2}-\d{2}|\d{1,2}\s*월\s*\d{1,2}\s*일`
)

// DatePhrase is the regexp fragment matching any phrase Normalize accepts.
// Callers embed it in larger patterns.
func DatePhrase() string {
	return datePhrasePieces
}

// Normalize converts input to YYYY-MM-DD. ISO input is returned unchanged
// once validated; "<m>월 <d>일" input takes referenceYear.
func Normalize(input string, referenceYear int) (string, error) {
	input = strings.TrimSpace(input)

	if isoPattern.MatchString(input) {
		if _, err := time.Parse(ISOLayout, input); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
		}
		return input, nil
	}

	m := monthDayPattern.FindStringSubmatch(input)
	if len(m) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}

	t := time.Date(referenceYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date rolls over out-of-range days (Feb 30 -> Mar 1).
	if t.Month() != time.Month(month) || t.Day() != day {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return t.Format(ISOLayout), nil
}

// Days returns every calendar day from start to end inclusive, at UTC
// midnight. It returns nil when start is after end.
func Days(start, end time.Time) []time.Time {
	start = truncate(start)
	end = truncate(end)
	if start.After(end) {
		return nil
	}

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
