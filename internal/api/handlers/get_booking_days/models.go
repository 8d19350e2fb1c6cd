package get_booking_days

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	planBooking "github.com/m04kA/IRS-ConsultationService/internal/usecase/plan_booking"
)

// SlotOptionResponse свободный интервал в ленте планировщика
type SlotOptionResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PlannerDayResponse день в ленте планировщика
type PlannerDayResponse struct {
	Date       string               `json:"date"`
	Selectable bool                 `json:"selectable"`
	Slots      []SlotOptionResponse `json:"slots,omitempty"`
}

// BookingDaysResponse лента планировщика бронирования
type BookingDaysResponse struct {
	TicketNumber string               `json:"ticketNumber"`
	ExpiresAt    string               `json:"expiresAt"` // RFC3339
	Days         []PlannerDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *planBooking.Response) *BookingDaysResponse {
	out := &BookingDaysResponse{
		TicketNumber: resp.TicketNumber,
		ExpiresAt:    resp.ExpiresAt.Format(time.RFC3339),
		Days:         make([]PlannerDayResponse, 0, len(resp.Days)),
	}
	for i := range resp.Days {
		day := &resp.Days[i]
		slots := make([]SlotOptionResponse, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, SlotOptionResponse{
				Start: s.Start.String(),
				End:   s.End.String(),
			})
		}
		out.Days = append(out.Days, PlannerDayResponse{
			Date:       day.Date.Format(domain.DateFormat),
			Selectable: day.Selectable,
			Slots:      slots,
		})
	}
	return out
}
