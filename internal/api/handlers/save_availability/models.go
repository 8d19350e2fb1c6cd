package save_availability

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// SaveAvailabilityRequest HTTP модель массового сохранения месяца
type SaveAvailabilityRequest struct {
	Month  string        `json:"month"` // "2026-03"
	Config ConfigPayload `json:"config"`
	Days   []DayPayload  `json:"days"`
}

// ConfigPayload конфигурация слотов в запросе
type ConfigPayload struct {
	WorkStart           string `json:"workStart"`
	WorkEnd             string `json:"workEnd"`
	LunchStart          string `json:"lunchStart"`
	LunchEnd            string `json:"lunchEnd"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// DayPayload день в запросе сохранения
type DayPayload struct {
	Date       string        `json:"date"` // "2026-03-10"
	Slots      []SlotPayload `json:"slots"`
	Customized bool          `json:"customized"`
}

// SlotPayload персистентная форма слота
type SlotPayload struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Custom    bool   `json:"custom"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SaveAvailabilityRequest) ToServiceRequest(adminID int64) (*availabilityModels.SaveMonthRequest, error) {
	month, err := time.Parse(domain.MonthFormat, r.Month)
	if err != nil {
		return nil, err
	}

	cfg, err := r.Config.toPayload()
	if err != nil {
		return nil, err
	}

	days := make([]availabilityModels.SaveDayPayload, 0, len(r.Days))
	for _, d := range r.Days {
		day, err := d.toPayload()
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return &availabilityModels.SaveMonthRequest{
		AdminID: adminID,
		Month:   month,
		Config:  cfg,
		Days:    days,
	}, nil
}

func (p *ConfigPayload) toPayload() (availabilityModels.ConfigPayload, error) {
	var out availabilityModels.ConfigPayload
	var err error

	if out.WorkStart, err = types.NewTimeStringFromString(p.WorkStart); err != nil {
		return out, err
	}
	if out.WorkEnd, err = types.NewTimeStringFromString(p.WorkEnd); err != nil {
		return out, err
	}
	if out.LunchStart, err = types.NewTimeStringFromString(p.LunchStart); err != nil {
		return out, err
	}
	if out.LunchEnd, err = types.NewTimeStringFromString(p.LunchEnd); err != nil {
		return out, err
	}
	out.SlotDurationMinutes = p.SlotDurationMinutes
	return out, nil
}

func (p *DayPayload) toPayload() (availabilityModels.SaveDayPayload, error) {
	var out availabilityModels.SaveDayPayload

	date, err := time.Parse(domain.DateFormat, p.Date)
	if err != nil {
		return out, err
	}

	slots := make([]availabilityModels.SlotPayload, 0, len(p.Slots))
	for _, s := range p.Slots {
		start, err := types.NewTimeStringFromString(s.Start)
		if err != nil {
			return out, err
		}
		end, err := types.NewTimeStringFromString(s.End)
		if err != nil {
			return out, err
		}
		slots = append(slots, availabilityModels.SlotPayload{
			Start:     start,
			End:       end,
			Available: s.Available,
			Custom:    s.Custom,
		})
	}

	out.Date = date
	out.Slots = slots
	out.Customized = p.Customized
	return out, nil
}
