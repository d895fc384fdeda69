package datemath

import (
	"fmt"
	"time"
)

// Parser resolves date phrases against "now" in a fixed timezone, so the
// implicit year of "7월 18일" follows the team's calendar rather than UTC.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ReferenceYear is the calendar year of now in the parser's timezone.
func (p *Parser) ReferenceYear(now time.Time) int {
	return now.In(p.location).Year()
}

// ParseDate normalizes input and returns the day at UTC midnight.
func (p *Parser) ParseDate(input string, now time.Time) (time.Time, error) {
	iso, err := Normalize(input, p.ReferenceYear(now))
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(ISOLayout, iso)
}
