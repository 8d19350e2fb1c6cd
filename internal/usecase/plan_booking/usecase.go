package plan_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	grantsService "github.com/m04kA/IRS-ConsultationService/internal/service/grants"
)

// UseCase use case планировщика бронирования
// Отдаёт посетителю даты, пригодные для записи: не прошедшие, будние,
// без выходного в календаре и хотя бы с одним свободным слотом
type UseCase struct {
	availabilityService AvailabilityService
	grantRegistry       GrantRegistry
	calendarClient      CalendarServiceClient
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityService AvailabilityService,
	grantRegistry GrantRegistry,
	calendarClient CalendarServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityService: availabilityService,
		grantRegistry:       grantRegistry,
		calendarClient:      calendarClient,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PlanBooking: validation failed: %v", err)
		return nil, err
	}

	session, err := uc.grantRegistry.Session(req.Token)
	if err != nil {
		return nil, mapGrantError(err)
	}

	_, days, err := uc.availabilityService.GetMonth(ctx, req.AdminID, req.Month)
	if err != nil {
		uc.logger.Error("PlanBooking: failed to load month admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: failed to load month: %v", ErrInternal, err)
	}

	from := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, req.Month.Location())
	to := from.AddDate(0, 1, -1)
	holidays, err := uc.calendarClient.GetEvents(ctx, from, to, []domain.EventType{domain.EventHoliday})
	if err != nil {
		uc.logger.Error("PlanBooking: failed to load holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to load holidays: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	out := make([]PlannerDay, 0, len(days))
	for i := range days {
		out = append(out, plannerDay(&days[i], now, holidays))
	}

	uc.logger.Info("PlanBooking: ticket=%s month=%s, %d days",
		session.Grant.TicketNumber, req.Month.Format(domain.MonthFormat), len(out))
	return &Response{
		TicketNumber: session.Grant.TicketNumber,
		ExpiresAt:    session.Grant.ExpiresAt,
		Days:         out,
	}, nil
}

// plannerDay решает пригодность даты и собирает свободные слоты
func plannerDay(day *availabilityModels.DayState, now time.Time, holidays []domain.CalendarEvent) PlannerDay {
	out := PlannerDay{Date: day.Date}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Date.Before(today) {
		return out
	}
	if wd := day.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return out
	}
	for i := range holidays {
		if holidays[i].IsHolidayOn(day.Date) {
			return out
		}
	}

	for _, s := range day.Slots {
		if s.Available && !s.Booked && s.EventTitle == nil {
			out.Slots = append(out.Slots, SlotOption{Start: s.Start, End: s.End})
		}
	}
	out.Selectable = len(out.Slots) > 0
	return out
}

func mapGrantError(err error) error {
	switch {
	case errors.Is(err, grantsService.ErrGrantExpired):
		return ErrGrantExpired
	case errors.Is(err, grantsService.ErrAlreadyBooked):
		return ErrAlreadyBooked
	case errors.Is(err, grantsService.ErrSessionNotFound),
		errors.Is(err, grantsService.ErrAccessDenied):
		return ErrAccessDenied
	default:
		return fmt.Errorf("%w: grant session: %v", ErrInternal, err)
	}
}
