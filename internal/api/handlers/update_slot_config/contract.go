package update_slot_config

import (
	"context"

	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

type AvailabilityService interface {
	SaveConfig(ctx context.Context, adminID int64, payload *availabilityModels.ConfigPayload) (*availabilityModels.ConfigState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
