package gcalendar

import "time"

// DefaultCalendarID is the authorized account's own calendar.
const DefaultCalendarID = "primary"

// AllDayEventRequest is the input for inserting an all-day event.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time         // the day; only Y-M-D is used
	Private     map[string]string // private extended properties
}

// ListEventsRequest is the input for listing events. Private entries are
// matched as "key=value" constraints, all of which must hold.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	Private    map[string]string
	MaxResults int64
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Status   string
	Date     time.Time // start day of an all-day event, zero otherwise
	Private  map[string]string
}
