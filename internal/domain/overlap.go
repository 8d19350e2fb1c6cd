package domain

import (
	"time"
)

// MarkAppointments flags slots occupied by consultation events as booked
// appointments (booked, no event title). Runs before event-overlap
// resolution so the two causes stay mutually exclusive.
func MarkAppointments(date time.Time, slots []Slot, events []CalendarEvent) []Slot {
	out := CloneSlots(slots)

	for i := range out {
		// Derived state is recomputed from scratch on every pass
		out[i].Booked = false
		out[i].EventTitle = nil

		for j := range events {
			ev := &events[j]
			if !ev.IsConsultation() {
				continue
			}
			if eventBlocksSlot(date, &out[i], ev) {
				out[i].Booked = true
				out[i].Available = false
				break
			}
		}
	}

	return out
}

// ResolveEventOverlaps converts slots colliding with blocking calendar
// events (any type except consultation) to booked with the blocking event's
// label attached. The first matching event wins. Slots already booked by a
// real appointment are never overwritten.
func ResolveEventOverlaps(date time.Time, slots []Slot, events []CalendarEvent) []Slot {
	out := CloneSlots(slots)

	for i := range out {
		if out[i].IsAppointment() {
			continue
		}

		for j := range events {
			ev := &events[j]
			if !ev.BlocksAvailability() {
				continue
			}
			if eventBlocksSlot(date, &out[i], ev) {
				title := ev.Label()
				out[i].Available = false
				out[i].Booked = true
				out[i].EventTitle = &title
				break
			}
		}
	}

	return out
}

// ResolveDay runs appointment marking followed by event-overlap resolution
// over one day's slots
func ResolveDay(date time.Time, slots []Slot, events []CalendarEvent) []Slot {
	return ResolveEventOverlaps(date, MarkAppointments(date, slots, events), events)
}

// eventBlocksSlot reports whether ev occupies the slot on the given date:
//   - whole-date events (all-day span, or interior dates of a multi-day
//     timed event) block every slot;
//   - a timed event on the slot's own date blocks on strict half-open
//     interval intersection of minutes-of-day.
func eventBlocksSlot(date time.Time, slot *Slot, ev *CalendarEvent) bool {
	if ev.blocksWholeDate(date) {
		return true
	}
	if ev.AllDay {
		return false
	}

	slotStart := slot.Start.Minutes()
	slotEnd := slot.End.Minutes()

	// Boundary dates of a timed event block by time-of-day on that date only
	if sameDate(ev.Start, ev.End) {
		if !sameDate(ev.Start, date) {
			return false
		}
		evStart := ev.Start.Hour()*60 + ev.Start.Minute()
		evEnd := ev.End.Hour()*60 + ev.End.Minute()
		return slotStart < evEnd && slotEnd > evStart
	}

	// Multi-day timed event: first date blocks from the event's start time,
	// last date blocks until the event's end time
	if sameDate(ev.Start, date) {
		evStart := ev.Start.Hour()*60 + ev.Start.Minute()
		return slotEnd > evStart
	}
	if sameDate(ev.End, date) {
		evEnd := ev.End.Hour()*60 + ev.End.Minute()
		return slotStart < evEnd
	}

	return false
}
