package undo_copy

import (
	"context"
	"time"
)

type AvailabilityService interface {
	UndoCopy(ctx context.Context, adminID int64, month time.Time) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
