package reset_day

import (
	"context"
	"time"

	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

type AvailabilityService interface {
	ResetDay(ctx context.Context, adminID int64, date time.Time) (*availabilityModels.DayState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
