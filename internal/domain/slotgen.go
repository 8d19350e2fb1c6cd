package domain

// GenerateSlots produces the ordered default slot sequence for one day from
// an availability config. Pure and deterministic: the same config always
// yields the same sequence, with no awareness of events or bookings.
//
// A cursor advances from work start in slot-duration steps. A candidate that
// overlaps the lunch window at all is never emitted; the cursor jumps
// directly to lunch end and retries, so no partial slots appear around
// lunch. Generation stops once a candidate would end past work end.
func GenerateSlots(cfg *AvailabilityConfig) []Slot {
	slots := make([]Slot, 0)
	if cfg.SlotDurationMinutes <= 0 {
		// The cursor would never advance
		return slots
	}
	lunch := cfg.HasLunchBreak()

	cursor := cfg.WorkStart
	for {
		end, err := cursor.AddMinutes(cfg.SlotDurationMinutes)
		if err != nil || end.IsAfter(cfg.WorkEnd) {
			break
		}

		if lunch && cursor.IsBefore(cfg.LunchEnd) && end.IsAfter(cfg.LunchStart) {
			cursor = cfg.LunchEnd
			continue
		}

		slots = append(slots, Slot{
			Start:     cursor,
			End:       end,
			Available: true,
		})
		cursor = end
	}

	return slots
}
