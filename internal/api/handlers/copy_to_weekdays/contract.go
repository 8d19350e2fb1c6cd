package copy_to_weekdays

import (
	"context"
	"time"
)

type AvailabilityService interface {
	CopyToWeekdays(ctx context.Context, adminID int64, date time.Time) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
