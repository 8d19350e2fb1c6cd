package get_public_availability

import (
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

// ConfigResponse публичная модель конфигурации слотов
type ConfigResponse struct {
	WorkStart           string `json:"workStart"`
	WorkEnd             string `json:"workEnd"`
	LunchStart          string `json:"lunchStart"`
	LunchEnd            string `json:"lunchEnd"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// SlotResponse публичная модель слота
// Занятые слоты видны как недоступные, без причины и деталей брони
type SlotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// DayResponse публичная модель дня
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// PublicAvailabilityResponse публичная лента доступности
type PublicAvailabilityResponse struct {
	Config ConfigResponse `json:"config"`
	Days   []DayResponse  `json:"days"`
}

// FromServiceMonth конвертирует месяц сервиса в публичный HTTP response
func FromServiceMonth(cfg *availabilityModels.ConfigState, days []availabilityModels.DayState) *PublicAvailabilityResponse {
	out := &PublicAvailabilityResponse{
		Config: ConfigResponse{
			WorkStart:           cfg.WorkStart.String(),
			WorkEnd:             cfg.WorkEnd.String(),
			LunchStart:          cfg.LunchStart.String(),
			LunchEnd:            cfg.LunchEnd.String(),
			SlotDurationMinutes: cfg.SlotDurationMinutes,
		},
		Days: make([]DayResponse, 0, len(days)),
	}

	for i := range days {
		day := &days[i]
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, SlotResponse{
				Start:     s.Start.String(),
				End:       s.End.String(),
				Available: s.Available && !s.Booked && s.EventTitle == nil,
			})
		}
		out.Days = append(out.Days, DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}
	return out
}
