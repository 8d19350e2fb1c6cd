package domain

import "time"

// GrantState is the verification state of a booking access grant
type GrantState string

const (
	GrantUnverified GrantState = "unverified"
	GrantVerified   GrantState = "verified"
	GrantExpired    GrantState = "expired"
	GrantRejected   GrantState = "rejected"
	GrantConsumed   GrantState = "consumed"
)

// BookingAccessGrant is a time-boxed, single-use permission letting exactly
// one identified user book exactly one consultation against one case ticket
type BookingAccessGrant struct {
	Token        string
	UserID       int64
	TicketNumber string
	ExpiresAt    time.Time
}

// GrantSession tracks a grant through its verification lifecycle:
// Unverified -> Verified -> Expired/Consumed, or straight from Unverified
// into any terminal state when verification fails (Rejected, Expired when
// the grant service reports the window passed, Consumed when it reports the
// ticket already booked). Expired, Rejected and Consumed are terminal.
type GrantSession struct {
	Grant BookingAccessGrant
	State GrantState
}

// NewGrantSession starts an unverified session for the three correlated
// identifiers of a booking link
func NewGrantSession(token string, userID int64, ticketNumber string) *GrantSession {
	return &GrantSession{
		Grant: BookingAccessGrant{
			Token:        token,
			UserID:       userID,
			TicketNumber: ticketNumber,
		},
		State: GrantUnverified,
	}
}

// IsComplete returns true if all three identifiers are present.
// A session missing any of them can only be rejected.
func (s *GrantSession) IsComplete() bool {
	return s.Grant.Token != "" && s.Grant.UserID > 0 && s.Grant.TicketNumber != ""
}

// IsTerminal returns true once no further transitions are possible
func (s *GrantSession) IsTerminal() bool {
	return s.State == GrantExpired || s.State == GrantRejected || s.State == GrantConsumed
}

// Verify moves the session to Verified with the grant service's expiry.
// Only an unverified session can be verified; a grant already past its
// expiry verifies straight into Expired.
func (s *GrantSession) Verify(expiresAt time.Time, now time.Time) error {
	if s.State != GrantUnverified {
		return ErrGrantTerminal
	}

	s.Grant.ExpiresAt = expiresAt
	if !now.Before(expiresAt) {
		s.State = GrantExpired
		return nil
	}
	s.State = GrantVerified
	return nil
}

// Reject terminally rejects an unverified session
func (s *GrantSession) Reject() error {
	if s.State != GrantUnverified {
		return ErrGrantTerminal
	}
	s.State = GrantRejected
	return nil
}

// Expire terminally expires an unverified session whose grant the grant
// service reported as past its window. Keeps the expiry distinguishable
// from a plain rejection on later lookups.
func (s *GrantSession) Expire() error {
	if s.State != GrantUnverified {
		return ErrGrantTerminal
	}
	s.State = GrantExpired
	return nil
}

// MarkConsumed terminally records that the grant was already spent
// elsewhere, as reported by the grant service on verification.
func (s *GrantSession) MarkConsumed() error {
	if s.State != GrantUnverified {
		return ErrGrantTerminal
	}
	s.State = GrantConsumed
	return nil
}

// SweepExpiry moves a verified session past its expiry into Expired.
// Cooperative: callers invoke it on a timer, it never interrupts an
// in-flight submission. Returns true if the state changed.
func (s *GrantSession) SweepExpiry(now time.Time) bool {
	if s.State != GrantVerified {
		return false
	}
	if now.Before(s.Grant.ExpiresAt) {
		return false
	}
	s.State = GrantExpired
	return true
}

// CanBook returns true while the session permits a booking attempt
func (s *GrantSession) CanBook(now time.Time) bool {
	return s.State == GrantVerified && now.Before(s.Grant.ExpiresAt)
}

// Consume terminally spends the grant after a successful booking.
// The grant is single-use: once consumed, no second attempt is possible.
func (s *GrantSession) Consume() error {
	if s.State != GrantVerified {
		return ErrGrantNotVerified
	}
	s.State = GrantConsumed
	return nil
}
