package get_public_availability

import (
	"context"
	"time"

	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetMonth(ctx context.Context, adminID int64, month time.Time) (*availabilityModels.ConfigState, []availabilityModels.DayState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
