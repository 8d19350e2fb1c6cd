package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

func mustDate(s string) time.Time {
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func at(date string, hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", date+" "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func plainSlot(start, end string) Slot {
	return Slot{Start: types.TimeString(start), End: types.TimeString(end), Available: true}
}

func TestResolveEventOverlaps_AllDayHolidayBlocksEverySlot(t *testing.T) {
	date := mustDate("2026-03-04")
	slots := []Slot{plainSlot("09:00", "09:30"), plainSlot("16:30", "17:00")}
	events := []CalendarEvent{{
		Type:   EventHoliday,
		Title:  "Spring holiday",
		Start:  at("2026-03-04", "00:00"),
		End:    at("2026-03-04", "00:00"),
		AllDay: true,
	}}

	out := ResolveEventOverlaps(date, slots, events)

	for _, s := range out {
		assert.False(t, s.Available)
		assert.True(t, s.Booked)
		require.NotNil(t, s.EventTitle)
		assert.Equal(t, "Spring holiday", *s.EventTitle)
	}
}

func TestResolveEventOverlaps_ConsultationNeverBlocks(t *testing.T) {
	date := mustDate("2026-03-04")
	slots := []Slot{plainSlot("10:00", "10:30")}
	events := []CalendarEvent{{
		Type:  EventConsultation,
		Start: at("2026-03-04", "10:00"),
		End:   at("2026-03-04", "10:30"),
	}}

	out := ResolveEventOverlaps(date, slots, events)

	assert.True(t, out[0].Available)
	assert.False(t, out[0].Booked)
}

func TestResolveEventOverlaps_TimedEventHalfOpenIntersection(t *testing.T) {
	date := mustDate("2026-03-04")
	slots := []Slot{
		plainSlot("09:00", "10:00"), // ends exactly at event start: not blocked
		plainSlot("10:00", "11:00"), // inside the event: blocked
		plainSlot("11:00", "12:00"), // starts exactly at event end: not blocked
	}
	events := []CalendarEvent{{
		Type:  EventNotAvailable,
		Start: at("2026-03-04", "10:00"),
		End:   at("2026-03-04", "11:00"),
	}}

	out := ResolveEventOverlaps(date, slots, events)

	assert.False(t, out[0].Booked)
	assert.True(t, out[1].Booked)
	assert.False(t, out[2].Booked)
}

func TestResolveEventOverlaps_TimedEventOtherDateIgnored(t *testing.T) {
	date := mustDate("2026-03-05")
	slots := []Slot{plainSlot("10:00", "11:00")}
	events := []CalendarEvent{{
		Type:  EventNotAvailable,
		Start: at("2026-03-04", "10:00"),
		End:   at("2026-03-04", "11:00"),
	}}

	out := ResolveEventOverlaps(date, slots, events)

	assert.False(t, out[0].Booked)
}

func TestResolveEventOverlaps_MultiDayTimedEvent(t *testing.T) {
	// Program event 2026-03-03 14:00 through 2026-03-05 11:00
	events := []CalendarEvent{{
		Type:  EventProgram,
		Title: "Training program",
		Start: at("2026-03-03", "14:00"),
		End:   at("2026-03-05", "11:00"),
	}}

	// First date: blocked from the start time onward
	first := ResolveEventOverlaps(mustDate("2026-03-03"),
		[]Slot{plainSlot("09:00", "10:00"), plainSlot("14:00", "15:00")}, events)
	assert.False(t, first[0].Booked)
	assert.True(t, first[1].Booked)

	// Interior date: fully blocked regardless of time of day
	interior := ResolveEventOverlaps(mustDate("2026-03-04"),
		[]Slot{plainSlot("08:00", "08:30"), plainSlot("17:00", "17:30")}, events)
	assert.True(t, interior[0].Booked)
	assert.True(t, interior[1].Booked)

	// Last date: blocked until the end time
	last := ResolveEventOverlaps(mustDate("2026-03-05"),
		[]Slot{plainSlot("10:00", "11:00"), plainSlot("11:00", "12:00")}, events)
	assert.True(t, last[0].Booked)
	assert.False(t, last[1].Booked)
}

func TestResolveEventOverlaps_FirstMatchingEventWins(t *testing.T) {
	date := mustDate("2026-03-04")
	slots := []Slot{plainSlot("10:00", "11:00")}
	events := []CalendarEvent{
		{Type: EventNotAvailable, Title: "Blocked morning", Start: at("2026-03-04", "09:00"), End: at("2026-03-04", "12:00")},
		{Type: EventHoliday, Title: "Holiday", Start: at("2026-03-04", "00:00"), End: at("2026-03-04", "00:00"), AllDay: true},
	}

	out := ResolveEventOverlaps(date, slots, events)

	require.NotNil(t, out[0].EventTitle)
	assert.Equal(t, "Blocked morning", *out[0].EventTitle)
}

func TestResolveEventOverlaps_TypeUsedWhenTitleEmpty(t *testing.T) {
	date := mustDate("2026-03-04")
	out := ResolveEventOverlaps(date, []Slot{plainSlot("10:00", "11:00")}, []CalendarEvent{
		{Type: EventNotAvailable, Start: at("2026-03-04", "10:00"), End: at("2026-03-04", "11:00")},
	})

	require.NotNil(t, out[0].EventTitle)
	assert.Equal(t, string(EventNotAvailable), *out[0].EventTitle)
}

func TestResolveEventOverlaps_AppointmentNotOverwritten(t *testing.T) {
	date := mustDate("2026-03-04")
	appointment := plainSlot("10:00", "10:30")
	appointment.Available = false
	appointment.Booked = true // booked, no title: a real appointment

	out := ResolveEventOverlaps(date, []Slot{appointment}, []CalendarEvent{
		{Type: EventHoliday, Title: "Holiday", Start: at("2026-03-04", "00:00"), End: at("2026-03-04", "00:00"), AllDay: true},
	})

	assert.True(t, out[0].Booked)
	assert.Nil(t, out[0].EventTitle, "appointment must not be relabelled as an event block")
}

func TestMarkAppointments(t *testing.T) {
	date := mustDate("2026-03-04")
	slots := []Slot{plainSlot("10:00", "10:30"), plainSlot("10:30", "11:00")}
	events := []CalendarEvent{{
		Type:  EventConsultation,
		Title: "Consultation T-100",
		Start: at("2026-03-04", "10:00"),
		End:   at("2026-03-04", "10:30"),
	}}

	out := MarkAppointments(date, slots, events)

	assert.True(t, out[0].Booked)
	assert.False(t, out[0].Available)
	assert.Nil(t, out[0].EventTitle, "appointments carry no event title")
	assert.False(t, out[1].Booked)
}

func TestMarkAppointments_ClearsStaleDerivedState(t *testing.T) {
	date := mustDate("2026-03-04")
	stale := plainSlot("10:00", "10:30")
	stale.Booked = true
	title := "Removed event"
	stale.EventTitle = &title

	out := ResolveDay(date, []Slot{stale}, nil)

	assert.False(t, out[0].Booked)
	assert.Nil(t, out[0].EventTitle)
}

func TestResolveDay_AppointmentThenBlocking(t *testing.T) {
	date := mustDate("2026-03-04")
	slots := []Slot{plainSlot("10:00", "10:30"), plainSlot("10:30", "11:00"), plainSlot("11:00", "11:30")}
	events := []CalendarEvent{
		{Type: EventConsultation, Start: at("2026-03-04", "10:00"), End: at("2026-03-04", "10:30")},
		{Type: EventNotAvailable, Title: "Meeting", Start: at("2026-03-04", "10:00"), End: at("2026-03-04", "11:00")},
	}

	out := ResolveDay(date, slots, events)

	assert.True(t, out[0].IsAppointment())
	assert.True(t, out[1].IsBlockedByEvent())
	assert.True(t, out[2].IsOpen())

	day := DaySlots{Date: date, Slots: out}
	assert.Equal(t, 1, day.OpenSlotCount())
}
