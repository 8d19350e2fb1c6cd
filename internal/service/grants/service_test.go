package grants

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	"github.com/m04kA/IRS-ConsultationService/internal/integrations/grantservice"
)

type fakeGrantClient struct {
	expiresAt time.Time
	err       error
	calls     int
}

func (c *fakeGrantClient) Verify(_ context.Context, _ string, _ int64, _ string) (time.Time, error) {
	c.calls++
	if c.err != nil {
		return time.Time{}, c.err
	}
	return c.expiresAt, nil
}

type fakeTime struct {
	now time.Time
}

func (t *fakeTime) Now() time.Time { return t.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var baseTime = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

func newTestGrants(client *fakeGrantClient, clock *fakeTime) *Service {
	svc := NewService(client, noopLogger{})
	svc.timeProvider = clock
	return svc
}

func TestVerify_Success(t *testing.T) {
	client := &fakeGrantClient{expiresAt: baseTime.Add(time.Hour)}
	svc := newTestGrants(client, &fakeTime{now: baseTime})

	session, err := svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
	require.NoError(t, err)
	assert.Equal(t, domain.GrantVerified, session.State)
	assert.True(t, session.CanBook(baseTime))
}

func TestVerify_SecondCallDoesNotRevalidate(t *testing.T) {
	client := &fakeGrantClient{expiresAt: baseTime.Add(time.Hour)}
	svc := newTestGrants(client, &fakeTime{now: baseTime})
	ctx := context.Background()

	_, err := svc.Verify(ctx, "tok-1", 42, "IR-1001")
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "tok-1", 42, "IR-1001")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
}

func TestVerify_IncompleteLinkRejectedLocally(t *testing.T) {
	client := &fakeGrantClient{expiresAt: baseTime.Add(time.Hour)}
	svc := newTestGrants(client, &fakeTime{now: baseTime})

	_, err := svc.Verify(context.Background(), "tok-1", 0, "IR-1001")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, client.calls)
}

func TestVerify_UpstreamErrors(t *testing.T) {
	cases := []struct {
		name     string
		upstream error
		want     error
	}{
		{"expired", grantservice.ErrGrantExpired, ErrGrantExpired},
		{"already booked", grantservice.ErrAlreadyBooked, ErrAlreadyBooked},
		{"denied", grantservice.ErrAccessDenied, ErrAccessDenied},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeGrantClient{err: tc.upstream}
			svc := newTestGrants(client, &fakeTime{now: baseTime})

			_, err := svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
			assert.ErrorIs(t, err, tc.want)

			// Отказ терминален: сессия зарегистрирована и недоступна
			_, err = svc.Session("tok-1")
			assert.Error(t, err)
		})
	}
}

// Повторная проверка того же токена возвращает исходную причину отказа,
// а не общий "доступ запрещен"
func TestVerify_RepeatKeepsRejectionReason(t *testing.T) {
	cases := []struct {
		name     string
		upstream error
		want     error
	}{
		{"expired stays expired", grantservice.ErrGrantExpired, ErrGrantExpired},
		{"already booked stays already booked", grantservice.ErrAlreadyBooked, ErrAlreadyBooked},
		{"denied stays denied", grantservice.ErrAccessDenied, ErrAccessDenied},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeGrantClient{err: tc.upstream}
			svc := newTestGrants(client, &fakeTime{now: baseTime})

			_, err := svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
			require.ErrorIs(t, err, tc.want)

			_, err = svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, client.calls)

			_, err = svc.Session("tok-1")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify_PastExpiryGoesStraightToExpired(t *testing.T) {
	client := &fakeGrantClient{expiresAt: baseTime.Add(-time.Minute)}
	svc := newTestGrants(client, &fakeTime{now: baseTime})

	_, err := svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
	assert.ErrorIs(t, err, ErrGrantExpired)
}

func TestSession_NotFound(t *testing.T) {
	svc := newTestGrants(&fakeGrantClient{}, &fakeTime{now: baseTime})

	_, err := svc.Session("unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_ExpiresLazily(t *testing.T) {
	client := &fakeGrantClient{expiresAt: baseTime.Add(time.Hour)}
	clock := &fakeTime{now: baseTime}
	svc := newTestGrants(client, clock)

	_, err := svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
	require.NoError(t, err)

	// Истечение обнаруживается при следующем обращении, без свипера
	clock.now = baseTime.Add(2 * time.Hour)
	_, err = svc.Session("tok-1")
	assert.ErrorIs(t, err, ErrGrantExpired)
}

func TestConsume_SingleUse(t *testing.T) {
	client := &fakeGrantClient{expiresAt: baseTime.Add(time.Hour)}
	svc := newTestGrants(client, &fakeTime{now: baseTime})

	_, err := svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
	require.NoError(t, err)

	require.NoError(t, svc.Consume("tok-1"))
	assert.ErrorIs(t, svc.Consume("tok-1"), ErrGrantNotUsable)

	// Потреблённый грант читается как уже забронированный
	_, err = svc.Session("tok-1")
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestSweep_ExpiresVerifiedSessions(t *testing.T) {
	client := &fakeGrantClient{expiresAt: baseTime.Add(time.Hour)}
	clock := &fakeTime{now: baseTime}
	svc := newTestGrants(client, clock)

	session, err := svc.Verify(context.Background(), "tok-1", 42, "IR-1001")
	require.NoError(t, err)

	clock.now = baseTime.Add(2 * time.Hour)
	svc.sweep()

	assert.Equal(t, domain.GrantExpired, session.State)
}
