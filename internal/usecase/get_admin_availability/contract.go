package get_admin_availability

import (
	"context"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса доступности
type AvailabilityService interface {
	GetMonth(ctx context.Context, adminID int64, month time.Time) (*models.ConfigState, []models.DayState, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
