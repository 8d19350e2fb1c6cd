package create_consultation

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	createConsultation "github.com/m04kA/IRS-ConsultationService/internal/usecase/create_consultation"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// CreateConsultationRequest HTTP модель запроса на создание консультации
type CreateConsultationRequest struct {
	Token     string `json:"token"`
	Date      string `json:"date"`      // "2026-03-10"
	StartTime string `json:"startTime"` // "10:00"
	Mode      string `json:"mode"`      // "online" | "in_person"
}

// ConsultationResponse HTTP модель созданной консультации
type ConsultationResponse struct {
	EventID      string `json:"eventId"`
	TicketNumber string `json:"ticketNumber"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Mode         string `json:"mode"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateConsultationRequest) ToUseCaseRequest(adminID int64) (*createConsultation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createConsultation.Request{
		Token:     r.Token,
		AdminID:   adminID,
		Date:      date,
		StartTime: startTime,
		Mode:      domain.ConsultationMode(r.Mode),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createConsultation.Response) *ConsultationResponse {
	return &ConsultationResponse{
		EventID:      resp.EventID,
		TicketNumber: resp.TicketNumber,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Mode:         string(resp.Mode),
	}
}
