package domain

import "errors"

var (
	// ErrInvalidConfig is returned when an availability config violates its invariants
	ErrInvalidConfig = errors.New("domain: invalid availability config")

	// ErrInvalidTimeRange is returned when a slot's start is not before its end
	ErrInvalidTimeRange = errors.New("domain: slot start must be before end")

	// ErrSlotOverlap is returned when a slot would overlap an existing slot on the same day
	ErrSlotOverlap = errors.New("domain: slot overlaps an existing slot")

	// ErrSlotNotFound is returned when no slot with the given start exists on the day
	ErrSlotNotFound = errors.New("domain: slot not found")

	// ErrDayNotFound is returned when the date is outside the month in view
	ErrDayNotFound = errors.New("domain: day not found in month")

	// ErrSlotBooked is returned when the operation is not allowed on a booked slot
	ErrSlotBooked = errors.New("domain: slot is booked")

	// ErrDayNotCustomized is returned when reset is invoked on a non-customized day
	ErrDayNotCustomized = errors.New("domain: day is not customized")

	// ErrNoUndoSnapshot is returned when there is no pending copy to undo
	ErrNoUndoSnapshot = errors.New("domain: no undo snapshot")

	// ErrGrantNotVerified is returned when a booking action requires a verified grant
	ErrGrantNotVerified = errors.New("domain: grant is not verified")

	// ErrGrantTerminal is returned on a transition attempt out of a terminal grant state
	ErrGrantTerminal = errors.New("domain: grant is in a terminal state")
)
