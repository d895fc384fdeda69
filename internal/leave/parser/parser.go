// Package parser turns one line of a leave notification into a model.Entry.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/model"
	"leave-calendar-sync/pkg/datemath"
)

// separator splits the person from the rest of the line.
const separator = "-"

// Parser classifies lines using an ordered list of matchers.
type Parser struct {
	dates    *datemath.Parser
	now      func() time.Time
	lex      Lexicon
	matchers []matcher

	dateRe  *regexp.Regexp
	rangeRe *regexp.Regexp
	halfRe  *regexp.Regexp
}

// New creates a Parser. dates supplies the timezone used to infer the year
// of "<m>월 <d>일" phrases.
func New(dates *datemath.Parser, lex Lexicon) *Parser {
	phrase := datemath.DatePhrase()
	halfWords := append(append(append([]string{}, lex.Morning...), lex.Afternoon...), lex.Half...)

	p := &Parser{
		dates:   dates,
		now:     time.Now,
		lex:     lex,
		dateRe:  regexp.MustCompile(`(` + phrase + `)`),
		rangeRe: regexp.MustCompile(`(` + phrase + `)\s*~\s*(` + phrase + `)`),
		halfRe:  regexp.MustCompile(`(?i)(` + phrase + `)\s*(` + alternation(halfWords) + `)`),
	}
	p.matchers = []matcher{
		{name: "cancel", match: p.matchCancel},
		{name: "range", match: p.matchRange},
		{name: "all_day", match: p.matchAllDay},
		{name: "half_day", match: p.matchHalfDay},
	}
	return p
}

// SetClock overrides the time source used for the reference year.
func (p *Parser) SetClock(now func() time.Time) {
	p.now = now
}

// Parse classifies one line. It never fails: anything it cannot use comes
// back as model.Unrecognized with the reason attached.
func (p *Parser) Parse(raw string) model.Entry {
	text := normalizeText(raw)
	if text == "" {
		return model.Unrecognized{Line: raw, Reason: leave.ErrEmptyLine}
	}

	idx := p.separatorIndex(text)
	if idx < 0 {
		return model.Unrecognized{Line: raw, Reason: leave.ErrMissingSeparator}
	}
	person := cleanPerson(text[:idx])
	if person == "" {
		return model.Unrecognized{Line: raw, Reason: leave.ErrMissingPerson}
	}

	ln := line{
		raw:    raw,
		folded: strings.ToLower(text),
		person: person,
		rest:   text[idx+len(separator):],
	}
	for _, m := range p.matchers {
		if entry, ok := m.match(ln); ok {
			return entry
		}
	}
	return model.Unrecognized{Line: raw, Reason: leave.ErrParseMismatch}
}

// separatorIndex returns the first dash that is not part of an ISO date, or
// -1.
func (p *Parser) separatorIndex(text string) int {
	dates := p.dateRe.FindAllStringIndex(text, -1)
	offset := 0
	for {
		i := strings.Index(text[offset:], separator)
		if i < 0 {
			return -1
		}
		i += offset
		inside := false
		for _, d := range dates {
			if i >= d[0] && i < d[1] {
				inside = true
				offset = d[1]
				break
			}
		}
		if !inside {
			return i
		}
	}
}

// matcher is one named pattern. match returns ok=false when the pattern does
// not apply, letting the next matcher try.
type matcher struct {
	name  string
	match func(ln line) (model.Entry, bool)
}

type line struct {
	raw    string
	folded string
	person string
	rest   string
}

func (p *Parser) matchCancel(ln line) (model.Entry, bool) {
	if !containsAny(ln.folded, p.lex.Cancel) {
		return nil, false
	}

	entry := model.CancelEntry{Person: ln.person}

	if m := p.rangeRe.FindStringSubmatch(ln.rest); m != nil {
		start, startErr := p.parseDate(m[1])
		end, endErr := p.parseDate(m[2])
		if startErr != nil || endErr != nil {
			entry.DateInvalid = true
		} else {
			// An inverted range is kept as-is; the archiver rejects it.
			entry.Dates = &model.DateSpan{Start: start, End: end}
		}
	} else if m := p.dateRe.FindStringSubmatch(ln.rest); m != nil {
		d, err := p.parseDate(m[1])
		if err != nil {
			entry.DateInvalid = true
		} else {
			span := model.SingleDay(d)
			entry.Dates = &span
		}
	}

	if kind, ok := p.kindKeyword(strings.ToLower(ln.rest)); ok {
		entry.Kind = &kind
	}
	return entry, true
}

func (p *Parser) matchRange(ln line) (model.Entry, bool) {
	m := p.rangeRe.FindStringSubmatch(ln.rest)
	if m == nil {
		return nil, false
	}

	start, err := p.parseDate(m[1])
	if err != nil {
		return model.Unrecognized{Line: ln.raw, Reason: err}, true
	}
	end, err := p.parseDate(m[2])
	if err != nil {
		return model.Unrecognized{Line: ln.raw, Reason: err}, true
	}

	span := model.DateSpan{Start: start, End: end}
	if span.Validate() != nil {
		return model.Unrecognized{
			Line:   ln.raw,
			Reason: fmt.Errorf("%w: %s", leave.ErrInvertedRange, span),
		}, true
	}
	return model.CreateEntry{Person: ln.person, Kind: model.KindFullDay, Dates: span}, true
}

func (p *Parser) matchAllDay(ln line) (model.Entry, bool) {
	if !containsAny(strings.ToLower(ln.rest), p.lex.AllDay) {
		return nil, false
	}
	m := p.dateRe.FindStringSubmatch(ln.rest)
	if m == nil {
		return nil, false
	}

	d, err := p.parseDate(m[1])
	if err != nil {
		return model.Unrecognized{Line: ln.raw, Reason: err}, true
	}
	return model.CreateEntry{Person: ln.person, Kind: model.KindFullDay, Dates: model.SingleDay(d)}, true
}

func (p *Parser) matchHalfDay(ln line) (model.Entry, bool) {
	m := p.halfRe.FindStringSubmatch(ln.rest)
	if m == nil {
		return nil, false
	}

	d, err := p.parseDate(m[1])
	if err != nil {
		return model.Unrecognized{Line: ln.raw, Reason: err}, true
	}

	keyword := strings.ToLower(m[2])
	kind := model.KindMorningHalf // a bare half-day marker means the morning
	if containsAny(keyword, p.lex.Afternoon) {
		kind = model.KindAfternoonHalf
	}
	return model.CreateEntry{Person: ln.person, Kind: kind, Dates: model.SingleDay(d)}, true
}

// kindKeyword returns the kind named by the earliest keyword in s.
func (p *Parser) kindKeyword(s string) (model.LeaveKind, bool) {
	candidates := []struct {
		words []string
		kind  model.LeaveKind
	}{
		{p.lex.Morning, model.KindMorningHalf},
		{p.lex.Afternoon, model.KindAfternoonHalf},
		{p.lex.AllDay, model.KindFullDay},
		{p.lex.Annual, model.KindFullDay},
		{p.lex.Half, model.KindMorningHalf},
	}

	best := -1
	var kind model.LeaveKind
	for _, c := range candidates {
		if i := indexAny(s, c.words); i >= 0 && (best < 0 || i < best) {
			best = i
			kind = c.kind
		}
	}
	return kind, best >= 0
}

func (p *Parser) parseDate(phrase string) (time.Time, error) {
	return p.dates.ParseDate(phrase, p.now())
}

// cleanPerson trims whitespace and the square brackets some senders put
// around their name.
func cleanPerson(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	return strings.TrimSpace(s)
}

func containsAny(s string, words []string) bool {
	return indexAny(s, words) >= 0
}

func indexAny(s string, words []string) int {
	best := -1
	for _, w := range words {
		if w == "" {
			continue
		}
		if i := strings.Index(s, strings.ToLower(w)); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

func alternation(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}
	return strings.Join(quoted, "|")
}
