package create_consultation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	calendarClient "github.com/m04kA/IRS-ConsultationService/internal/integrations/calendarservice"
	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	grantsService "github.com/m04kA/IRS-ConsultationService/internal/service/grants"
)

// UseCase use case создания консультации по ссылке на бронирование
// Слот проверяется по свежепересчитанной сетке непосредственно перед
// отправкой события; источник истины о двойном бронировании - календарь
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
	calendar CalendarServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityService: availabilityService,
		grantRegistry:       grantRegistry,
		calendarClient:      calendar,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// Execute выполняет use case создания консультации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateConsultation: admin=%d date=%s time=%s mode=%s",
		req.AdminID, req.Date.Format(domain.DateFormat), req.StartTime, req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateConsultation: validation failed: %v", err)
		return nil, err
	}

	// 2. Сессия должна быть проверена и не истекшей
	session, err := uc.grantRegistry.Session(req.Token)
	if err != nil {
		return nil, mapGrantError(err)
	}
	if !session.CanBook(uc.timeProvider.Now()) {
		return nil, ErrGrantExpired
	}

	// 3. Перепроверяем слот по свежей сетке
	slot, err := uc.resolveSlot(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Создаем событие-консультацию в календаре
	start := slot.Start.At(req.Date)
	end := slot.End.At(req.Date)
	event, err := uc.calendarClient.CreateConsultation(
		ctx, session.Grant.TicketNumber, session.Grant.UserID, start, end, req.Mode)
	if err != nil {
		switch {
		case errors.Is(err, calendarClient.ErrSlotConflict):
			// Кто-то успел раньше: сессия остаётся проверенной, можно выбрать
			// другой слот
			uc.logger.Warn("CreateConsultation: calendar conflict ticket=%s date=%s time=%s",
				session.Grant.TicketNumber, req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrSlotConflict
		case errors.Is(err, calendarClient.ErrInvalidEvent):
			return nil, fmt.Errorf("%w: calendar rejected event: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("CreateConsultation: calendar call failed: %v", err)
			return nil, fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}
	}

	// 5. Успех терминально расходует грант
	if err := uc.grantRegistry.Consume(req.Token); err != nil {
		// Событие уже создано; потеря гранта хуже повторной консультации
		uc.logger.Error("CreateConsultation: failed to consume grant ticket=%s: %v",
			session.Grant.TicketNumber, err)
	}

	uc.logger.Info("CreateConsultation: booked ticket=%s event=%s %s %s-%s",
		session.Grant.TicketNumber, event.ID, req.Date.Format(domain.DateFormat), slot.Start, slot.End)
	return &Response{
		EventID:      event.ID,
		TicketNumber: session.Grant.TicketNumber,
		Date:         req.Date,
		StartTime:    slot.Start,
		EndTime:      slot.End,
		Mode:         req.Mode,
	}, nil
}

// resolveSlot находит выбранный слот в свежепересчитанной сетке месяца
// и убеждается, что он всё ещё свободен
func (uc *UseCase) resolveSlot(ctx context.Context, req *Request) (*availabilityModels.SlotState, error) {
	_, days, err := uc.availabilityService.GetMonth(ctx, req.AdminID, req.Date)
	if err != nil {
		uc.logger.Error("CreateConsultation: failed to load month admin=%d: %v", req.AdminID, err)
		return nil, fmt.Errorf("%w: failed to load month: %v", ErrInternal, err)
	}

	for i := range days {
		day := &days[i]
		if !sameDate(day.Date, req.Date) {
			continue
		}
		for j := range day.Slots {
			slot := &day.Slots[j]
			if slot.Start != req.StartTime {
				continue
			}
			if !slot.Available || slot.Booked || slot.EventTitle != nil {
				return nil, ErrSlotNotAvailable
			}
			return slot, nil
		}
	}
	return nil, ErrSlotNotAvailable
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

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
