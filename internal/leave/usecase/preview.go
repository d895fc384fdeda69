package usecase

import (
	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/parser"
	"leave-calendar-sync/internal/model"
)

// Preview parses text line by line without touching the store.
func (uc *implUseCase) Preview(text string) []leave.ParsedLine {
	lines := parser.SplitLines(text)
	out := make([]leave.ParsedLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, toParsedLine(line, uc.parser.Parse(line)))
	}
	return out
}

func toParsedLine(line string, entry model.Entry) leave.ParsedLine {
	pl := leave.ParsedLine{Line: line}
	switch e := entry.(type) {
	case model.CreateEntry:
		pl.Type = leave.EntryTypeCreate
		pl.Person = e.Person
		pl.Kind = string(e.Kind)
		pl.Dates = e.Dates.String()
	case model.CancelEntry:
		pl.Type = leave.EntryTypeCancel
		pl.Person = e.Person
		if e.Kind != nil {
			pl.Kind = string(*e.Kind)
		}
		if e.Dates != nil {
			pl.Dates = e.Dates.String()
		}
		if e.DateInvalid {
			pl.Reason = leave.ErrUnresolvedDate.Error()
		}
	case model.Unrecognized:
		pl.Type = leave.EntryTypeUnrecognized
		if e.Reason != nil {
			pl.Reason = e.Reason.Error()
		}
	}
	return pl
}
