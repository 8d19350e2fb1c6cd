package plan_booking

import (
	"context"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	"github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	GetMonth(ctx context.Context, adminID int64, month time.Time) (*models.ConfigState, []models.DayState, error)
}

// GrantRegistry интерфейс реестра сессий доступа к бронированию
type GrantRegistry interface {
	Session(token string) (*domain.GrantSession, error)
}

// CalendarServiceClient интерфейс клиента для CalendarService
type CalendarServiceClient interface {
	GetEvents(ctx context.Context, from, to time.Time, typeFilter []domain.EventType) ([]domain.CalendarEvent, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
