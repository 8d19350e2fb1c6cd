package get_admin_availability

import (
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	getAdminAvailability "github.com/m04kA/IRS-ConsultationService/internal/usecase/get_admin_availability"
)

// ConfigResponse HTTP модель конфигурации слотов
type ConfigResponse struct {
	WorkStart           string `json:"workStart"`
	WorkEnd             string `json:"workEnd"`
	LunchStart          string `json:"lunchStart"`
	LunchEnd            string `json:"lunchEnd"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// SlotResponse HTTP модель слота с производными полями
type SlotResponse struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Available  bool    `json:"available"`
	Booked     bool    `json:"booked"`
	Custom     bool    `json:"custom,omitempty"`
	EventTitle *string `json:"eventTitle,omitempty"`
}

// DayResponse HTTP модель дня
type DayResponse struct {
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
	Customized bool           `json:"customized,omitempty"`
}

// AvailabilityResponse HTTP модель ответа месячной доступности
type AvailabilityResponse struct {
	Config ConfigResponse `json:"config"`
	Days   []DayResponse  `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAdminAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Config: ConfigResponse{
			WorkStart:           resp.Config.WorkStart.String(),
			WorkEnd:             resp.Config.WorkEnd.String(),
			LunchStart:          resp.Config.LunchStart.String(),
			LunchEnd:            resp.Config.LunchEnd.String(),
			SlotDurationMinutes: resp.Config.SlotDurationMinutes,
		},
		Days: make([]DayResponse, 0, len(resp.Days)),
	}
	for i := range resp.Days {
		out.Days = append(out.Days, dayResponse(&resp.Days[i]))
	}
	return out
}

func dayResponse(day *availabilityModels.DayState) DayResponse {
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
	return DayResponse{
		Date:       day.Date.Format(domain.DateFormat),
		Slots:      slots,
		Customized: day.Customized,
	}
}
