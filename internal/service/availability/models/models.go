package models

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// ConfigState состояние конфигурации слотов для ответа сервиса
type ConfigState struct {
	AdminID             int64
	WorkStart           types.TimeString
	WorkEnd             types.TimeString
	LunchStart          types.TimeString
	LunchEnd            types.TimeString
	SlotDurationMinutes int
	UpdatedAt           time.Time
}

// SlotState состояние слота с производными полями
type SlotState struct {
	Start      types.TimeString
	End        types.TimeString
	Available  bool
	Booked     bool
	Custom     bool
	EventTitle *string
}

// DayState состояние одного дня после операции
type DayState struct {
	Date       time.Time
	Slots      []SlotState
	Customized bool
}

// SaveDayPayload один день в запросе массового сохранения
type SaveDayPayload struct {
	Date       time.Time
	Slots      []SlotPayload
	Customized bool
}

// SlotPayload персистентная форма слота в запросе сохранения
type SlotPayload struct {
	Start     types.TimeString
	End       types.TimeString
	Available bool
	Custom    bool
}

// SaveMonthRequest запрос массового сохранения месяца
type SaveMonthRequest struct {
	AdminID int64
	Month   time.Time
	Config  ConfigPayload
	Days    []SaveDayPayload
}

// ConfigPayload конфигурация слотов в запросе сохранения
type ConfigPayload struct {
	WorkStart           types.TimeString
	WorkEnd             types.TimeString
	LunchStart          types.TimeString
	LunchEnd            types.TimeString
	SlotDurationMinutes int
}

// ToDomainConfig конвертирует payload в доменную конфигурацию
func (p *ConfigPayload) ToDomainConfig(adminID int64) *domain.AvailabilityConfig {
	return &domain.AvailabilityConfig{
		AdminID:             adminID,
		WorkStart:           p.WorkStart,
		WorkEnd:             p.WorkEnd,
		LunchStart:          p.LunchStart,
		LunchEnd:            p.LunchEnd,
		SlotDurationMinutes: p.SlotDurationMinutes,
	}
}

// ToDomainDay конвертирует payload дня в доменную модель
func (p *SaveDayPayload) ToDomainDay() domain.DaySlots {
	slots := make([]domain.Slot, len(p.Slots))
	for i, s := range p.Slots {
		slots[i] = domain.Slot{
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
			Custom:    s.Custom,
		}
	}
	return domain.DaySlots{
		Date:       p.Date,
		Slots:      slots,
		Customized: p.Customized,
	}
}

// FromDomainConfig конвертирует доменную конфигурацию в состояние
func FromDomainConfig(cfg *domain.AvailabilityConfig) *ConfigState {
	return &ConfigState{
		AdminID:             cfg.AdminID,
		WorkStart:           cfg.WorkStart,
		WorkEnd:             cfg.WorkEnd,
		LunchStart:          cfg.LunchStart,
		LunchEnd:            cfg.LunchEnd,
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		UpdatedAt:           cfg.UpdatedAt,
	}
}

// FromDomainDay конвертирует доменный день в состояние
func FromDomainDay(day *domain.DaySlots) *DayState {
	slots := make([]SlotState, len(day.Slots))
	for i, s := range day.Slots {
		slots[i] = SlotState{
			Start:      s.Start,
			End:        s.End,
			Available:  s.Available,
			Booked:     s.Booked,
			Custom:     s.Custom,
			EventTitle: s.EventTitle,
		}
	}
	return &DayState{
		Date:       day.Date,
		Slots:      slots,
		Customized: day.Customized,
	}
}

// FromDomainDays конвертирует список доменных дней
func FromDomainDays(days []domain.DaySlots) []DayState {
	out := make([]DayState, len(days))
	for i := range days {
		out[i] = *FromDomainDay(&days[i])
	}
	return out
}
