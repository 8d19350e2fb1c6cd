package verify_booking_access

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
)

// VerifyRequest HTTP модель запроса проверки ссылки на бронирование
type VerifyRequest struct {
	Token        string `json:"token"`
	UserID       int64  `json:"userId"`
	TicketNumber string `json:"ticketNumber"`
}

// VerifyResponse HTTP модель успешной проверки
type VerifyResponse struct {
	Success      bool   `json:"success"`
	TicketNumber string `json:"ticketNumber"`
	ExpiresAt    string `json:"expiresAt"` // RFC3339
}

// FromSession конвертирует проверенную сессию в HTTP response
func FromSession(session *domain.GrantSession) *VerifyResponse {
	return &VerifyResponse{
		Success:      true,
		TicketNumber: session.Grant.TicketNumber,
		ExpiresAt:    session.Grant.ExpiresAt.Format(time.RFC3339),
	}
}
