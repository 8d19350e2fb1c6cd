package apply_slot_config

import (
	"context"
	"time"

	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

type AvailabilityService interface {
	ApplyConfig(ctx context.Context, adminID int64, month time.Time) ([]availabilityModels.DayState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
