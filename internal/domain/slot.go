package domain

import (
	"sort"
	"time"

	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// Slot represents a discrete bookable time interval within a day
//
// Booked and EventTitle are derived state, recomputed from calendar events on
// every read: Booked with EventTitle set means the slot is blocked by a
// non-consultation calendar event; Booked without EventTitle means a real
// consultation appointment occupies it. Only Start/End/Available/Custom are
// ever persisted.
type Slot struct {
	Start      types.TimeString
	End        types.TimeString
	Available  bool
	Booked     bool
	Custom     bool
	EventTitle *string
}

// IsAppointment returns true if the slot is occupied by a real consultation
func (s *Slot) IsAppointment() bool {
	return s.Booked && s.EventTitle == nil
}

// IsBlockedByEvent returns true if the slot is blocked by a calendar event
func (s *Slot) IsBlockedByEvent() bool {
	return s.Booked && s.EventTitle != nil
}

// IsOpen returns true if the slot can currently be booked
func (s *Slot) IsOpen() bool {
	return s.Available && !s.Booked
}

// Overlaps reports whether the slot intersects the half-open interval
// [start, end); merely touching boundaries is not an overlap
func (s *Slot) Overlaps(start, end types.TimeString) bool {
	return s.Start.IsBefore(end) && s.End.IsAfter(start)
}

// DaySlots holds one day's ordered slot list.
// Customized means the list diverges from generator output and must survive
// bulk regeneration untouched.
type DaySlots struct {
	Date       time.Time
	Slots      []Slot
	Customized bool
}

// HasAppointment returns true if any slot on the day holds a real consultation
func (d *DaySlots) HasAppointment() bool {
	for i := range d.Slots {
		if d.Slots[i].IsAppointment() {
			return true
		}
	}
	return false
}

// OpenSlotCount returns the number of slots open for booking
func (d *DaySlots) OpenSlotCount() int {
	count := 0
	for i := range d.Slots {
		if d.Slots[i].IsOpen() {
			count++
		}
	}
	return count
}

// FindSlot returns the index of the slot with the given start, or -1
func (d *DaySlots) FindSlot(start types.TimeString) int {
	for i := range d.Slots {
		if d.Slots[i].Start == start {
			return i
		}
	}
	return -1
}

// SortSlots restores the by-start ordering invariant after an insert or edit
func (d *DaySlots) SortSlots() {
	sort.Slice(d.Slots, func(i, j int) bool {
		return d.Slots[i].Start.IsBefore(d.Slots[j].Start)
	})
}

// CloneSlots returns a deep copy of the day's slot list
func (d *DaySlots) CloneSlots() []Slot {
	return CloneSlots(d.Slots)
}

// CloneSlots returns a deep copy of a slot list, including event titles
func CloneSlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	for i := range out {
		if out[i].EventTitle != nil {
			title := *out[i].EventTitle
			out[i].EventTitle = &title
		}
	}
	return out
}
