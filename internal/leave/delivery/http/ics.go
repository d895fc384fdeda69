package http

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"leave-calendar-sync/internal/model"
)

const (
	icsProductID = "-//leave-calendar-sync//Leave Calendar//EN"
	icsName      = "Leave"
	icsUIDDomain = "@leave-calendar-sync"
)

// renderICS builds an iCalendar document with one all-day VEVENT per
// record. DTEND is exclusive, so it is the day after the record. Half-day
// leave is transparent: the person is still free for part of the day.
func renderICS(records []model.Record, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(icsName)

	for _, r := range records {
		event := cal.AddEvent(r.ID + icsUIDDomain)
		event.SetDtStampTime(stamp.UTC())
		event.SetSummary(r.Title)
		event.SetAllDayStartAt(r.Date)
		event.SetAllDayEndAt(r.Date.AddDate(0, 0, 1))
		if r.Kind.Valid() {
			event.AddCategory(string(r.Kind))
		}
		if r.Kind.IsHalfDay() {
			event.SetTimeTransparency(ics.TransparencyTransparent)
		} else {
			event.SetTimeTransparency(ics.TransparencyOpaque)
		}
		if r.URL != "" {
			event.SetURL(r.URL)
		}
	}
	return cal.Serialize()
}
