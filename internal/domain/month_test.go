package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// March 2026: the 1st is a Sunday, the 2nd through the 6th are weekdays.
func testMonth(t *testing.T) *MonthAvailability {
	t.Helper()
	cfg := testConfig("09:00", "17:00", "12:00", "13:00", 30)
	cfg.AdminID = 7
	return NewMonthAvailability(7, mustDate("2026-03-01"), cfg, nil)
}

func TestNewMonthAvailability_DefaultsForEveryDay(t *testing.T) {
	m := testMonth(t)

	require.Len(t, m.Days, 31)
	for _, day := range m.Days {
		assert.Len(t, day.Slots, 14)
		assert.False(t, day.Customized)
	}
}

func TestNewMonthAvailability_KeepsPersistedDays(t *testing.T) {
	cfg := testConfig("09:00", "17:00", "12:00", "13:00", 30)
	persisted := []DaySlots{{
		Date:       mustDate("2026-03-10"),
		Slots:      []Slot{plainSlot("08:00", "08:45")},
		Customized: true,
	}}

	m := NewMonthAvailability(7, mustDate("2026-03-01"), cfg, persisted)

	day := m.Day(mustDate("2026-03-10"))
	require.NotNil(t, day)
	assert.True(t, day.Customized)
	require.Len(t, day.Slots, 1)
	assert.Equal(t, "08:00", day.Slots[0].Start.String())
}

func TestToggleSlot(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	require.NoError(t, m.ToggleSlot(date, "09:00"))

	day := m.Day(date)
	assert.False(t, day.Slots[0].Available)
	assert.True(t, day.Customized)

	require.NoError(t, m.ToggleSlot(date, "09:00"))
	assert.True(t, day.Slots[0].Available)
}

func TestToggleSlot_BookedSlotImmutable(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")
	m.Day(date).Slots[0].Booked = true

	err := m.ToggleSlot(date, "09:00")

	require.ErrorIs(t, err, ErrSlotBooked)
}

func TestAddCustomSlot(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	require.NoError(t, m.AddCustomSlot(date, "08:00", "08:30", nil))

	day := m.Day(date)
	assert.True(t, day.Customized)
	assert.Equal(t, "08:00", day.Slots[0].Start.String())
	assert.True(t, day.Slots[0].Custom)
	assert.True(t, day.Slots[0].Available)
}

func TestAddCustomSlot_RejectsInvalidRange(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	require.ErrorIs(t, m.AddCustomSlot(date, "08:30", "08:00", nil), ErrInvalidTimeRange)
	require.ErrorIs(t, m.AddCustomSlot(date, "08:00", "08:00", nil), ErrInvalidTimeRange)
	assert.False(t, m.Day(date).Customized)
}

func TestAddCustomSlot_RejectsOverlap(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	// 09:15-09:45 collides with the generated 09:00-09:30 and 09:30-10:00
	require.ErrorIs(t, m.AddCustomSlot(date, "09:15", "09:45", nil), ErrSlotOverlap)

	// Touching boundaries is not an overlap
	require.NoError(t, m.AddCustomSlot(date, "08:30", "09:00", nil))
}

func TestAddCustomSlot_BlockedImmediatelyByEvent(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")
	events := []CalendarEvent{{
		Type:  EventNotAvailable,
		Title: "Blocked",
		Start: at("2026-03-10", "08:00"),
		End:   at("2026-03-10", "09:00"),
	}}

	require.NoError(t, m.AddCustomSlot(date, "08:00", "08:30", events))

	slot := m.Day(date).Slots[0]
	assert.True(t, slot.IsBlockedByEvent())
	assert.False(t, slot.Available)
	require.NotNil(t, slot.EventTitle)
	assert.Equal(t, "Blocked", *slot.EventTitle)
}

func TestUpdateSlot(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	require.NoError(t, m.UpdateSlot(date, "09:00", "08:00", "08:30", nil))

	day := m.Day(date)
	assert.True(t, day.Customized)
	assert.Equal(t, "08:00", day.Slots[0].Start.String())
	assert.Equal(t, -1, day.FindSlot("09:00"))
}

func TestUpdateSlot_AppointmentImmutable(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")
	day := m.Day(date)
	day.Slots[0].Booked = true
	day.Slots[0].Available = false

	require.ErrorIs(t, m.UpdateSlot(date, "09:00", "08:00", "08:30", nil), ErrSlotBooked)
}

func TestDeleteSlot(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	require.NoError(t, m.DeleteSlot(date, "09:00"))

	day := m.Day(date)
	assert.Len(t, day.Slots, 13)
	assert.True(t, day.Customized)
	assert.Equal(t, -1, day.FindSlot("09:00"))
}

func TestDeleteSlot_AppointmentImmutableButEventBlockDeletable(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")
	day := m.Day(date)

	day.Slots[0].Booked = true // appointment
	require.ErrorIs(t, m.DeleteSlot(date, "09:00"), ErrSlotBooked)

	title := "Holiday"
	day.Slots[1].Booked = true
	day.Slots[1].EventTitle = &title // event block
	require.NoError(t, m.DeleteSlot(date, "09:30"))
}

func TestCopyToWeekdays_AndUndoRoundTrip(t *testing.T) {
	m := testMonth(t)
	now := at("2026-03-10", "08:00")
	src := mustDate("2026-03-10")

	require.NoError(t, m.ToggleSlot(src, "09:00"))
	require.NoError(t, m.AddCustomSlot(src, "08:00", "08:30", nil))

	// Capture the pre-copy state of every other day
	prior := make(map[string]DaySlots)
	for _, day := range m.Days {
		prior[day.Date.Format(DateFormat)] = DaySlots{
			Date:       day.Date,
			Slots:      day.CloneSlots(),
			Customized: day.Customized,
		}
	}

	snapshot, err := m.CopyToWeekdays(src, now, nil)
	require.NoError(t, err)
	require.NotEmpty(t, snapshot.Dates)

	// Destinations received the source's list and became customized
	dst := m.Day(mustDate("2026-03-11"))
	assert.True(t, dst.Customized)
	assert.Equal(t, "08:00", dst.Slots[0].Start.String())
	assert.False(t, dst.Slots[1].Available, "toggled-off slot copied")

	require.NoError(t, m.ApplyUndo(snapshot))

	// Every day except the source is back to its exact pre-copy state
	for _, day := range m.Days {
		if sameDate(day.Date, src) {
			continue
		}
		expect := prior[day.Date.Format(DateFormat)]
		assert.Equal(t, expect.Slots, day.Slots, "date %s", day.Date.Format(DateFormat))
		assert.Equal(t, expect.Customized, day.Customized)
	}
}

func TestCopyToWeekdays_SkipsPastWeekendsAndAppointments(t *testing.T) {
	m := testMonth(t)
	now := at("2026-03-10", "08:00")
	src := mustDate("2026-03-10")

	// 2026-03-12 holds a real appointment
	m.Day(mustDate("2026-03-12")).Slots[0].Booked = true

	snapshot, err := m.CopyToWeekdays(src, now, nil)
	require.NoError(t, err)

	copied := make(map[string]bool, len(snapshot.Dates))
	for _, d := range snapshot.Dates {
		copied[d.Format(DateFormat)] = true
	}

	assert.False(t, copied["2026-03-09"], "past day must be skipped")
	assert.False(t, copied["2026-03-14"], "saturday must be skipped")
	assert.False(t, copied["2026-03-15"], "sunday must be skipped")
	assert.False(t, copied["2026-03-12"], "day with appointment must be skipped")
	assert.False(t, copied["2026-03-10"], "source day is not a destination")
	assert.True(t, copied["2026-03-11"])
	assert.True(t, copied["2026-03-13"])
	assert.True(t, copied["2026-03-31"], "in-view future weekday included")
}

func TestCopyToWeekdays_DestinationReResolvedAgainstOwnEvents(t *testing.T) {
	m := testMonth(t)
	now := at("2026-03-10", "08:00")
	src := mustDate("2026-03-10")
	events := []CalendarEvent{{
		Type:   EventHoliday,
		Title:  "Holiday",
		Start:  at("2026-03-11", "00:00"),
		End:    at("2026-03-11", "00:00"),
		AllDay: true,
	}}

	_, err := m.CopyToWeekdays(src, now, events)
	require.NoError(t, err)

	// Source stays open, the holiday destination is fully blocked
	assert.True(t, m.Day(src).Slots[0].IsOpen())
	for _, s := range m.Day(mustDate("2026-03-11")).Slots {
		assert.True(t, s.IsBlockedByEvent())
	}
}

func TestApplyUndo_NoSnapshot(t *testing.T) {
	m := testMonth(t)

	require.ErrorIs(t, m.ApplyUndo(nil), ErrNoUndoSnapshot)
}

func TestResetDay(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	require.NoError(t, m.ToggleSlot(date, "09:00"))
	require.NoError(t, m.AddCustomSlot(date, "08:00", "08:30", nil))
	require.True(t, m.Day(date).Customized)

	require.NoError(t, m.ResetDay(date, nil))

	day := m.Day(date)
	assert.False(t, day.Customized)
	assert.Equal(t, GenerateSlots(m.Config), day.Slots)
}

func TestResetDay_OnlyCustomizedDays(t *testing.T) {
	m := testMonth(t)

	require.ErrorIs(t, m.ResetDay(mustDate("2026-03-10"), nil), ErrDayNotCustomized)
}

func TestResetThenRegenerateIdempotent(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")

	require.NoError(t, m.ToggleSlot(date, "09:00"))
	require.NoError(t, m.ResetDay(date, nil))
	m.Regenerate(nil)

	// A reset day followed by apply matches a never-customized day
	pristine := testMonth(t)
	pristine.Regenerate(nil)
	assert.Equal(t, pristine.Day(date).Slots, m.Day(date).Slots)
}

func TestRegenerate_SkipsCustomizedAndAppointmentDays(t *testing.T) {
	m := testMonth(t)
	customized := mustDate("2026-03-10")
	withAppointment := mustDate("2026-03-11")

	require.NoError(t, m.AddCustomSlot(customized, "08:00", "08:30", nil))
	m.Day(withAppointment).Slots[0].Booked = true
	m.Day(withAppointment).Slots[0].Available = false

	m.Config.SlotDurationMinutes = 60
	m.Regenerate(nil)

	assert.Equal(t, 15, len(m.Day(customized).Slots), "customized day untouched")
	assert.True(t, m.Day(withAppointment).Slots[0].Booked, "appointment day untouched")
	assert.Len(t, m.Day(mustDate("2026-03-12")).Slots, 7, "plain day regenerated with new duration")
}

func TestUpdateSlot_ReResolvedAgainstEvents(t *testing.T) {
	m := testMonth(t)
	date := mustDate("2026-03-10")
	events := []CalendarEvent{{
		Type:  EventNotAvailable,
		Title: "Blocked",
		Start: at("2026-03-10", "08:00"),
		End:   at("2026-03-10", "09:00"),
	}}

	require.NoError(t, m.UpdateSlot(date, "09:00", "08:00", "08:30", events))

	slot := m.Day(date).Slots[0]
	assert.Equal(t, types.TimeString("08:00"), slot.Start)
	assert.True(t, slot.IsBlockedByEvent())
}
