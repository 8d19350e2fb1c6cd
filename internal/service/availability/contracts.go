package availability

import (
	"context"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	GetConfig(ctx context.Context, adminID int64) (*domain.AvailabilityConfig, error)
	UpsertConfig(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error)
	GetMonthDays(ctx context.Context, adminID int64, from, to time.Time) ([]domain.DaySlots, error)
	UpsertDay(ctx context.Context, adminID int64, day *domain.DaySlots) error
	UpsertDays(ctx context.Context, adminID int64, days []domain.DaySlots) error
}

// CalendarServiceClient интерфейс клиента для CalendarService
type CalendarServiceClient interface {
	GetEvents(ctx context.Context, from, to time.Time, typeFilter []domain.EventType) ([]domain.CalendarEvent, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
