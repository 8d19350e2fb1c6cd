package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantSession_VerifyThenConsume(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	s := NewGrantSession("tok-1", 42, "T-100")

	require.True(t, s.IsComplete())
	require.NoError(t, s.Verify(now.Add(30*time.Minute), now))
	assert.Equal(t, GrantVerified, s.State)
	assert.True(t, s.CanBook(now))

	require.NoError(t, s.Consume())
	assert.Equal(t, GrantConsumed, s.State)
	assert.True(t, s.IsTerminal())
	assert.False(t, s.CanBook(now))
}

func TestGrantSession_SingleUse(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	s := NewGrantSession("tok-1", 42, "T-100")
	require.NoError(t, s.Verify(now.Add(time.Hour), now))
	require.NoError(t, s.Consume())

	// A consumed grant permits no second booking attempt
	require.ErrorIs(t, s.Consume(), ErrGrantNotVerified)
	require.ErrorIs(t, s.Verify(now.Add(time.Hour), now), ErrGrantTerminal)
}

func TestGrantSession_IncompleteIdentifiers(t *testing.T) {
	assert.False(t, NewGrantSession("", 42, "T-100").IsComplete())
	assert.False(t, NewGrantSession("tok", 0, "T-100").IsComplete())
	assert.False(t, NewGrantSession("tok", 42, "").IsComplete())
}

func TestGrantSession_RejectOnlyFromUnverified(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	s := NewGrantSession("tok", 42, "T-100")
	require.NoError(t, s.Reject())
	assert.Equal(t, GrantRejected, s.State)
	assert.True(t, s.IsTerminal())

	verified := NewGrantSession("tok", 42, "T-100")
	require.NoError(t, verified.Verify(now.Add(time.Hour), now))
	require.ErrorIs(t, verified.Reject(), ErrGrantTerminal)
}

func TestGrantSession_FailedVerificationKeepsReason(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	expired := NewGrantSession("tok", 42, "T-100")
	require.NoError(t, expired.Expire())
	assert.Equal(t, GrantExpired, expired.State)
	assert.True(t, expired.IsTerminal())

	spent := NewGrantSession("tok", 42, "T-100")
	require.NoError(t, spent.MarkConsumed())
	assert.Equal(t, GrantConsumed, spent.State)
	assert.True(t, spent.IsTerminal())

	// From Verified these states are reached only via SweepExpiry and Consume
	verified := NewGrantSession("tok", 42, "T-100")
	require.NoError(t, verified.Verify(now.Add(time.Hour), now))
	require.ErrorIs(t, verified.Expire(), ErrGrantTerminal)
	require.ErrorIs(t, verified.MarkConsumed(), ErrGrantTerminal)
}

func TestGrantSession_VerifyPastExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	s := NewGrantSession("tok", 42, "T-100")

	require.NoError(t, s.Verify(now.Add(-time.Minute), now))

	assert.Equal(t, GrantExpired, s.State)
}

func TestGrantSession_ExpiryMonotonic(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	expiry := now.Add(10 * time.Minute)
	s := NewGrantSession("tok", 42, "T-100")
	require.NoError(t, s.Verify(expiry, now))

	assert.False(t, s.SweepExpiry(now.Add(5*time.Minute)))
	assert.Equal(t, GrantVerified, s.State)

	assert.True(t, s.SweepExpiry(expiry))
	assert.Equal(t, GrantExpired, s.State)

	// Once past expiry the session can never return to Verified
	assert.False(t, s.SweepExpiry(now))
	assert.Equal(t, GrantExpired, s.State)
	require.ErrorIs(t, s.Verify(now.Add(time.Hour), now), ErrGrantTerminal)
	require.ErrorIs(t, s.Consume(), ErrGrantNotVerified)
}
