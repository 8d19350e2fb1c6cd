package update_slot_config

import (
	"time"

	availabilityModels "github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// UpdateSlotConfigRequest HTTP модель запроса сохранения конфигурации
type UpdateSlotConfigRequest struct {
	WorkStart           string `json:"workStart"`  // "09:00"
	WorkEnd             string `json:"workEnd"`    // "17:00"
	LunchStart          string `json:"lunchStart"` // "12:00"
	LunchEnd            string `json:"lunchEnd"`   // "13:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// SlotConfigResponse HTTP модель сохранённой конфигурации
type SlotConfigResponse struct {
	AdminID             int64  `json:"adminId"`
	WorkStart           string `json:"workStart"`
	WorkEnd             string `json:"workEnd"`
	LunchStart          string `json:"lunchStart"`
	LunchEnd            string `json:"lunchEnd"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	UpdatedAt           string `json:"updatedAt"`
}

// ToServicePayload конвертирует HTTP запрос в модель сервиса
func (r *UpdateSlotConfigRequest) ToServicePayload() (*availabilityModels.ConfigPayload, error) {
	workStart, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return nil, err
	}
	lunchStart, err := types.NewTimeStringFromString(r.LunchStart)
	if err != nil {
		return nil, err
	}
	lunchEnd, err := types.NewTimeStringFromString(r.LunchEnd)
	if err != nil {
		return nil, err
	}

	return &availabilityModels.ConfigPayload{
		WorkStart:           workStart,
		WorkEnd:             workEnd,
		LunchStart:          lunchStart,
		LunchEnd:            lunchEnd,
		SlotDurationMinutes: r.SlotDurationMinutes,
	}, nil
}

// FromServiceState конвертирует состояние сервиса в HTTP response
func FromServiceState(state *availabilityModels.ConfigState) *SlotConfigResponse {
	return &SlotConfigResponse{
		AdminID:             state.AdminID,
		WorkStart:           state.WorkStart.String(),
		WorkEnd:             state.WorkEnd.String(),
		LunchStart:          state.LunchStart.String(),
		LunchEnd:            state.LunchEnd.String(),
		SlotDurationMinutes: state.SlotDurationMinutes,
		UpdatedAt:           state.UpdatedAt.Format(time.RFC3339),
	}
}
