package calendarservice

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	"github.com/m04kA/IRS-ConsultationService/pkg/ptr"
)

// Event модель события календаря на проводе
// Абсолютные времена передаются как ISO-8601 (RFC 3339)
type Event struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	AllDay       bool    `json:"allDay"`
	TicketNumber *string `json:"ticketNumber,omitempty"`
	UserID       *int64  `json:"userId,omitempty"`
	Mode         *string `json:"mode,omitempty"`
}

// CreateEventRequest запрос на создание события консультации
type CreateEventRequest struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Start        string `json:"start"`
	End          string `json:"end"`
	AllDay       bool   `json:"allDay"`
	TicketNumber string `json:"ticketNumber"`
	UserID       int64  `json:"userId"`
	Mode         string `json:"mode"`
}

// CreateEventResponse ответ на создание события
type CreateEventResponse struct {
	Success bool  `json:"success"`
	Data    Event `json:"data"`
}

// ErrorResponse модель ошибки от CalendarService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует wire-модель в доменное событие
func (e *Event) ToDomain() (domain.CalendarEvent, error) {
	start, err := time.Parse(time.RFC3339, e.Start)
	if err != nil {
		return domain.CalendarEvent{}, err
	}
	end, err := time.Parse(time.RFC3339, e.End)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	event := domain.CalendarEvent{
		ID:           e.ID,
		Type:         domain.EventType(e.Type),
		Title:        e.Title,
		Start:        start,
		End:          end,
		AllDay:       e.AllDay,
		TicketNumber: e.TicketNumber,
		UserID:       e.UserID,
	}
	if e.Mode != nil {
		event.Mode = ptr.Ptr(domain.ConsultationMode(*e.Mode))
	}

	return event, nil
}
