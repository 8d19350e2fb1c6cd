package update_slot

import (
	"context"
	"time"

	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

type AvailabilityService interface {
	UpdateSlot(ctx context.Context, adminID int64, date time.Time, start, newStart, newEnd types.TimeString) (*availabilityModels.DayState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
