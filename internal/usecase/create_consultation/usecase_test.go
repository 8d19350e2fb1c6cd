package create_consultation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	calendarClient "github.com/m04kA/IRS-ConsultationService/internal/integrations/calendarservice"
	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	grantsService "github.com/m04kA/IRS-ConsultationService/internal/service/grants"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

type fakeAvailability struct {
	days []availabilityModels.DayState
}

func (f *fakeAvailability) GetMonth(_ context.Context, _ int64, _ time.Time) (*availabilityModels.ConfigState, []availabilityModels.DayState, error) {
	return &availabilityModels.ConfigState{}, f.days, nil
}

type fakeGrants struct {
	session    *domain.GrantSession
	sessionErr error

	consumed   int
	consumeErr error
}

func (f *fakeGrants) Session(string) (*domain.GrantSession, error) {
	return f.session, f.sessionErr
}

func (f *fakeGrants) Consume(string) error {
	f.consumed++
	return f.consumeErr
}

type fakeCalendar struct {
	created *domain.CalendarEvent
	err     error

	gotStart time.Time
	gotEnd   time.Time
	gotMode  domain.ConsultationMode
}

func (f *fakeCalendar) CreateConsultation(_ context.Context, _ string, _ int64, start, end time.Time, mode domain.ConsultationMode) (*domain.CalendarEvent, error) {
	f.gotStart = start
	f.gotEnd = end
	f.gotMode = mode
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

type fakeTime struct {
	now time.Time
}

func (t *fakeTime) Now() time.Time { return t.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func marchDate(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func ts(t *testing.T, v string) types.TimeString {
	t.Helper()
	out, err := types.NewTimeStringFromString(v)
	require.NoError(t, err)
	return out
}

func verifiedSession(expiresAt time.Time) *domain.GrantSession {
	s := domain.NewGrantSession("tok-1", 42, "IR-1001")
	_ = s.Verify(expiresAt, expiresAt.Add(-time.Hour))
	return s
}

func openDay(t *testing.T, date time.Time) availabilityModels.DayState {
	return availabilityModels.DayState{
		Date: date,
		Slots: []availabilityModels.SlotState{
			{Start: ts(t, "09:00"), End: ts(t, "09:30"), Available: true},
			{Start: ts(t, "09:30"), End: ts(t, "10:00"), Available: true, Booked: true},
		},
	}
}

func newBooking(avail *fakeAvailability, grants *fakeGrants, cal *fakeCalendar, now time.Time) *UseCase {
	uc := NewUseCase(avail, grants, cal, noopLogger{})
	uc.timeProvider = &fakeTime{now: now}
	return uc
}

func bookRequest(t *testing.T, start string) *Request {
	return &Request{
		Token:     "tok-1",
		AdminID:   7,
		Date:      marchDate(10),
		StartTime: ts(t, start),
		Mode:      domain.ModeOnline,
	}
}

func TestCreateConsultation_Success(t *testing.T) {
	avail := &fakeAvailability{days: []availabilityModels.DayState{openDay(t, marchDate(10))}}
	grants := &fakeGrants{session: verifiedSession(marchDate(20))}
	cal := &fakeCalendar{created: &domain.CalendarEvent{ID: "evt-123", Type: domain.EventConsultation}}
	uc := newBooking(avail, grants, cal, marchDate(9))

	resp, err := uc.Execute(context.Background(), bookRequest(t, "09:00"))
	require.NoError(t, err)

	assert.Equal(t, "evt-123", resp.EventID)
	assert.Equal(t, "IR-1001", resp.TicketNumber)
	assert.Equal(t, "09:30", string(resp.EndTime))
	assert.Equal(t, domain.ModeOnline, resp.Mode)

	// Событие составлено из даты и границ слота
	assert.Equal(t, marchDate(10).Add(9*time.Hour), cal.gotStart)
	assert.Equal(t, marchDate(10).Add(9*time.Hour+30*time.Minute), cal.gotEnd)
	assert.Equal(t, domain.ModeOnline, cal.gotMode)

	// Грант одноразовый: успех расходует его
	assert.Equal(t, 1, grants.consumed)
}

func TestCreateConsultation_BookedSlotRejected(t *testing.T) {
	avail := &fakeAvailability{days: []availabilityModels.DayState{openDay(t, marchDate(10))}}
	grants := &fakeGrants{session: verifiedSession(marchDate(20))}
	uc := newBooking(avail, grants, &fakeCalendar{}, marchDate(9))

	_, err := uc.Execute(context.Background(), bookRequest(t, "09:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, grants.consumed)
}

func TestCreateConsultation_UnknownSlotRejected(t *testing.T) {
	avail := &fakeAvailability{days: []availabilityModels.DayState{openDay(t, marchDate(10))}}
	grants := &fakeGrants{session: verifiedSession(marchDate(20))}
	uc := newBooking(avail, grants, &fakeCalendar{}, marchDate(9))

	_, err := uc.Execute(context.Background(), bookRequest(t, "11:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestCreateConsultation_ConflictKeepsSessionRetryable(t *testing.T) {
	avail := &fakeAvailability{days: []availabilityModels.DayState{openDay(t, marchDate(10))}}
	session := verifiedSession(marchDate(20))
	grants := &fakeGrants{session: session}
	cal := &fakeCalendar{err: calendarClient.ErrSlotConflict}
	uc := newBooking(avail, grants, cal, marchDate(9))

	_, err := uc.Execute(context.Background(), bookRequest(t, "09:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Конфликт не расходует грант: попытку можно повторить
	assert.Zero(t, grants.consumed)
	assert.Equal(t, domain.GrantVerified, session.State)
}

func TestCreateConsultation_ExpiredSessionRejected(t *testing.T) {
	avail := &fakeAvailability{days: []availabilityModels.DayState{openDay(t, marchDate(10))}}
	grants := &fakeGrants{session: verifiedSession(marchDate(20))}
	// Сессия проверена, но срок уже прошёл
	uc := newBooking(avail, grants, &fakeCalendar{}, marchDate(25))

	_, err := uc.Execute(context.Background(), bookRequest(t, "09:00"))
	assert.ErrorIs(t, err, ErrGrantExpired)
}

func TestCreateConsultation_GrantErrorsMapped(t *testing.T) {
	cases := []struct {
		name     string
		upstream error
		want     error
	}{
		{"expired", grantsService.ErrGrantExpired, ErrGrantExpired},
		{"already booked", grantsService.ErrAlreadyBooked, ErrAlreadyBooked},
		{"not found", grantsService.ErrSessionNotFound, ErrAccessDenied},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grants := &fakeGrants{sessionErr: tc.upstream}
			uc := newBooking(&fakeAvailability{}, grants, &fakeCalendar{}, marchDate(9))

			_, err := uc.Execute(context.Background(), bookRequest(t, "09:00"))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateConsultation_ValidatesMode(t *testing.T) {
	uc := newBooking(&fakeAvailability{}, &fakeGrants{}, &fakeCalendar{}, marchDate(9))

	req := bookRequest(t, "09:00")
	req.Mode = "by_phone"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
