package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// MonthAvailability is one administrator's availability for a visible month:
// the slot config plus a DaySlots entry for every day of the month, ordered
// by date. All mutating operations below preserve the per-day ordering
// invariant and the customized-day semantics.
type MonthAvailability struct {
	AdminID int64
	Month   time.Time // first day of the month
	Config  *AvailabilityConfig
	Days    []DaySlots
}

// CopyUndoSnapshot captures the prior state of every date affected by a
// bulk copy, enabling exact reversal. Transient: consumed once by Undo All,
// then discarded; a new copy discards any unconsumed snapshot.
type CopyUndoSnapshot struct {
	Dates           []time.Time
	PriorSlots      map[string][]Slot
	PriorCustomized map[string]bool
}

// NewMonthAvailability builds a month view with generator defaults for every
// day not present in persisted; persisted days keep their stored slots and
// customized flags
func NewMonthAvailability(adminID int64, month time.Time, cfg *AvailabilityConfig, persisted []DaySlots) *MonthAvailability {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())

	stored := make(map[string]DaySlots, len(persisted))
	for _, day := range persisted {
		stored[day.Date.Format(DateFormat)] = day
	}

	defaults := GenerateSlots(cfg)

	days := make([]DaySlots, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if day, ok := stored[d.Format(DateFormat)]; ok {
			day.Date = d
			days = append(days, day)
			continue
		}
		days = append(days, DaySlots{
			Date:  d,
			Slots: CloneSlots(defaults),
		})
	}

	return &MonthAvailability{
		AdminID: adminID,
		Month:   first,
		Config:  cfg,
		Days:    days,
	}
}

// Day returns the day entry for date, or nil if date is outside the month
func (m *MonthAvailability) Day(date time.Time) *DaySlots {
	for i := range m.Days {
		if sameDate(m.Days[i].Date, date) {
			return &m.Days[i]
		}
	}
	return nil
}

// ResolveEvents recomputes appointment marking and event blocking for every
// day of the month. Reapplied even to customized days on every load.
func (m *MonthAvailability) ResolveEvents(events []CalendarEvent) {
	for i := range m.Days {
		m.Days[i].Slots = ResolveDay(m.Days[i].Date, m.Days[i].Slots, events)
	}
}

// Regenerate recomputes generator defaults for every day of the month from
// the current config, leaving untouched the customized days and the days
// holding a real appointment
func (m *MonthAvailability) Regenerate(events []CalendarEvent) {
	defaults := GenerateSlots(m.Config)

	for i := range m.Days {
		day := &m.Days[i]
		if day.Customized || day.HasAppointment() {
			continue
		}
		day.Slots = ResolveDay(day.Date, CloneSlots(defaults), events)
	}
}

// ToggleSlot flips availability on the slot starting at start.
// Booked slots are immutable to this operation.
func (m *MonthAvailability) ToggleSlot(date time.Time, start types.TimeString) error {
	day := m.Day(date)
	if day == nil {
		return ErrDayNotFound
	}

	idx := day.FindSlot(start)
	if idx < 0 {
		return ErrSlotNotFound
	}

	slot := &day.Slots[idx]
	if slot.Booked {
		return ErrSlotBooked
	}

	slot.Available = !slot.Available
	day.Customized = true
	return nil
}

// AddCustomSlot inserts a manual slot on date. The interval must be valid
// and free of overlap with every existing slot on the day; if it collides
// with a blocking calendar event it is marked booked immediately. The day
// becomes customized.
func (m *MonthAvailability) AddCustomSlot(date time.Time, start, end types.TimeString, events []CalendarEvent) error {
	day := m.Day(date)
	if day == nil {
		return ErrDayNotFound
	}

	if err := validateSlotRange(start, end); err != nil {
		return err
	}
	for i := range day.Slots {
		if day.Slots[i].Overlaps(start, end) {
			return fmt.Errorf("%w: %s-%s collides with %s-%s",
				ErrSlotOverlap, start, end, day.Slots[i].Start, day.Slots[i].End)
		}
	}

	slot := Slot{
		Start:     start,
		End:       end,
		Available: true,
		Custom:    true,
	}
	resolved := ResolveDay(date, []Slot{slot}, events)

	day.Slots = append(day.Slots, resolved[0])
	day.SortSlots()
	day.Customized = true
	return nil
}

// UpdateSlot edits the start/end of the slot currently starting at start.
// Disallowed while the slot holds a real appointment. The day becomes
// customized and the edited slot is re-resolved against calendar events.
func (m *MonthAvailability) UpdateSlot(date time.Time, start, newStart, newEnd types.TimeString, events []CalendarEvent) error {
	day := m.Day(date)
	if day == nil {
		return ErrDayNotFound
	}

	idx := day.FindSlot(start)
	if idx < 0 {
		return ErrSlotNotFound
	}
	if day.Slots[idx].IsAppointment() {
		return ErrSlotBooked
	}

	if err := validateSlotRange(newStart, newEnd); err != nil {
		return err
	}
	for i := range day.Slots {
		if i == idx {
			continue
		}
		if day.Slots[i].Overlaps(newStart, newEnd) {
			return fmt.Errorf("%w: %s-%s collides with %s-%s",
				ErrSlotOverlap, newStart, newEnd, day.Slots[i].Start, day.Slots[i].End)
		}
	}

	edited := day.Slots[idx]
	edited.Start = newStart
	edited.End = newEnd
	edited.Booked = false
	edited.EventTitle = nil
	day.Slots[idx] = ResolveDay(date, []Slot{edited}, events)[0]

	day.SortSlots()
	day.Customized = true
	return nil
}

// DeleteSlot removes the slot starting at start. Disallowed while the slot
// holds a real appointment; event-blocked slots may be deleted. The day
// becomes customized.
func (m *MonthAvailability) DeleteSlot(date time.Time, start types.TimeString) error {
	day := m.Day(date)
	if day == nil {
		return ErrDayNotFound
	}

	idx := day.FindSlot(start)
	if idx < 0 {
		return ErrSlotNotFound
	}
	if day.Slots[idx].IsAppointment() {
		return ErrSlotBooked
	}

	day.Slots = append(day.Slots[:idx], day.Slots[idx+1:]...)
	day.Customized = true
	return nil
}

// CopyToWeekdays duplicates the source day's slot list onto every other
// in-view date that is not in the past, is a weekday, and holds no real
// appointment. Each destination's booked state is recomputed against that
// destination's own calendar events rather than copied verbatim. Returns
// the snapshot of prior state enabling Undo All.
func (m *MonthAvailability) CopyToWeekdays(src time.Time, now time.Time, events []CalendarEvent) (*CopyUndoSnapshot, error) {
	srcDay := m.Day(src)
	if srcDay == nil {
		return nil, ErrDayNotFound
	}

	today := truncateToDate(now)

	var targets []*DaySlots
	for i := range m.Days {
		day := &m.Days[i]
		if sameDate(day.Date, src) {
			continue
		}
		if day.Date.Before(today) {
			continue
		}
		if wd := day.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if day.HasAppointment() {
			continue
		}
		targets = append(targets, day)
	}

	snapshot := &CopyUndoSnapshot{
		PriorSlots:      make(map[string][]Slot, len(targets)),
		PriorCustomized: make(map[string]bool, len(targets)),
	}

	// Capture prior state of every affected date before mutating anything
	for _, day := range targets {
		key := day.Date.Format(DateFormat)
		snapshot.Dates = append(snapshot.Dates, day.Date)
		snapshot.PriorSlots[key] = day.CloneSlots()
		snapshot.PriorCustomized[key] = day.Customized
	}

	// Copies carry only the persisted slot shape; bookedness comes from the
	// destination's own events so the copy cannot hide a conflicting holiday
	source := srcDay.CloneSlots()
	for i := range source {
		source[i].Booked = false
		source[i].EventTitle = nil
	}

	for _, day := range targets {
		day.Slots = ResolveDay(day.Date, CloneSlots(source), events)
		day.Customized = true
	}

	return snapshot, nil
}

// ApplyUndo restores exactly the dates captured in the snapshot to their
// prior slot lists and customized flags. No other day is affected.
func (m *MonthAvailability) ApplyUndo(snapshot *CopyUndoSnapshot) error {
	if snapshot == nil {
		return ErrNoUndoSnapshot
	}

	for _, date := range snapshot.Dates {
		day := m.Day(date)
		if day == nil {
			return ErrDayNotFound
		}
		key := date.Format(DateFormat)
		day.Slots = CloneSlots(snapshot.PriorSlots[key])
		day.Customized = snapshot.PriorCustomized[key]
	}

	return nil
}

// ResetDay regenerates a customized day from the current config, reapplies
// event resolution and clears the customized flag. Only valid on a
// customized day.
func (m *MonthAvailability) ResetDay(date time.Time, events []CalendarEvent) error {
	day := m.Day(date)
	if day == nil {
		return ErrDayNotFound
	}
	if !day.Customized {
		return ErrDayNotCustomized
	}

	day.Slots = ResolveDay(date, GenerateSlots(m.Config), events)
	day.Customized = false
	return nil
}

func validateSlotRange(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, start, end)
	}
	return nil
}
