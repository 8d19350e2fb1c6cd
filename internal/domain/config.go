package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// AvailabilityConfig represents an administrator's working window used to
// seed slot generation: work hours, lunch break and slot duration
type AvailabilityConfig struct {
	AdminID             int64
	WorkStart           types.TimeString
	WorkEnd             types.TimeString
	LunchStart          types.TimeString
	LunchEnd            types.TimeString
	SlotDurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultAvailabilityConfig returns the config applied when the
// administrator has not saved one yet
func DefaultAvailabilityConfig(adminID int64) *AvailabilityConfig {
	return &AvailabilityConfig{
		AdminID:             adminID,
		WorkStart:           types.TimeString(DefaultWorkStart),
		WorkEnd:             types.TimeString(DefaultWorkEnd),
		LunchStart:          types.TimeString(DefaultLunchStart),
		LunchEnd:            types.TimeString(DefaultLunchEnd),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// Validate checks the config invariants:
// workStart < lunchStart <= lunchEnd < workEnd, slot duration within bounds
func (c *AvailabilityConfig) Validate() error {
	for _, t := range []types.TimeString{c.WorkStart, c.WorkEnd, c.LunchStart, c.LunchEnd} {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if !c.WorkStart.IsBefore(c.LunchStart) {
		return fmt.Errorf("%w: work start must be before lunch start", ErrInvalidConfig)
	}
	if c.LunchStart.IsAfter(c.LunchEnd) {
		return fmt.Errorf("%w: lunch start must not be after lunch end", ErrInvalidConfig)
	}
	if !c.LunchEnd.IsBefore(c.WorkEnd) {
		return fmt.Errorf("%w: lunch end must be before work end", ErrInvalidConfig)
	}
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidConfig, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}

	return nil
}

// HasLunchBreak returns true if the lunch window is non-empty
func (c *AvailabilityConfig) HasLunchBreak() bool {
	return c.LunchStart.IsBefore(c.LunchEnd)
}
