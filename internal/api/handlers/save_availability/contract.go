package save_availability

import (
	"context"

	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

type AvailabilityService interface {
	SaveMonth(ctx context.Context, req *availabilityModels.SaveMonthRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
