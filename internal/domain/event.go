package domain

import "time"

// EventType classifies calendar events
type EventType string

const (
	EventHoliday      EventType = "holiday"
	EventNotAvailable EventType = "not_available"
	EventConsultation EventType = "consultation"
	EventProgram      EventType = "program_event"
)

// CalendarEvent represents an event from the external calendar service.
// Consultation-typed events carry the booking binding (ticket, user, mode).
type CalendarEvent struct {
	ID     string
	Type   EventType
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool

	TicketNumber *string
	UserID       *int64
	Mode         *ConsultationMode
}

// BlocksAvailability returns true if the event participates in overlap
// exclusion. Consultations never block other slots on their account.
func (e *CalendarEvent) BlocksAvailability() bool {
	return e.Type != EventConsultation
}

// IsConsultation returns true for a real appointment event
func (e *CalendarEvent) IsConsultation() bool {
	return e.Type == EventConsultation
}

// Label returns the text attached to blocked slots: the event title,
// falling back to the event type
func (e *CalendarEvent) Label() string {
	if e.Title != "" {
		return e.Title
	}
	return string(e.Type)
}

// IsHolidayOn returns true if the event is an all-day holiday covering date
func (e *CalendarEvent) IsHolidayOn(date time.Time) bool {
	return e.Type == EventHoliday && e.AllDay && e.coversDate(date)
}

// coversDate reports whether date falls inside the event's date span
// (inclusive, date-only comparison)
func (e *CalendarEvent) coversDate(date time.Time) bool {
	d := truncateToDate(date)
	return !d.Before(truncateToDate(e.Start)) && !d.After(truncateToDate(e.End))
}

// blocksWholeDate reports whether the event blocks every slot on date:
// all-day events block every covered date; multi-day timed events fully
// block the dates strictly between their start and end dates
func (e *CalendarEvent) blocksWholeDate(date time.Time) bool {
	d := truncateToDate(date)
	startDate := truncateToDate(e.Start)
	endDate := truncateToDate(e.End)

	if e.AllDay {
		return !d.Before(startDate) && !d.After(endDate)
	}
	return d.After(startDate) && d.Before(endDate)
}

// sameDate reports whether two timestamps fall on the same calendar date
func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
