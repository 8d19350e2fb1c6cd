package verify_booking_access

import (
	"context"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
)

type GrantsService interface {
	Verify(ctx context.Context, token string, userID int64, ticketNumber string) (*domain.GrantSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
