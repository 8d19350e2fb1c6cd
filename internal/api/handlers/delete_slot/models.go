package delete_slot

import (
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Available  bool    `json:"available"`
	Booked     bool    `json:"booked"`
	Custom     bool    `json:"custom,omitempty"`
	EventTitle *string `json:"eventTitle,omitempty"`
}

// DayResponse HTTP модель дня после операции
type DayResponse struct {
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
	Customized bool           `json:"customized"`
}

// FromServiceDay конвертирует день сервиса в HTTP response
func FromServiceDay(day *availabilityModels.DayState) *DayResponse {
	slots := make([]SlotResponse, 0, len(day.Slots))
	for _, s := range day.Slots {
		slots = append(slots, SlotResponse{
			Start:      s.Start.String(),
			End:        s.End.String(),
			Available:  s.Available,
			Booked:     s.Booked,
			Custom:     s.Custom,
			EventTitle: s.EventTitle,
		})
	}
	return &DayResponse{
		Date:       day.Date.Format(domain.DateFormat),
		Slots:      slots,
		Customized: day.Customized,
	}
}
