package plan_booking

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// Request модель запроса планировщика бронирования
type Request struct {
	Token   string    // Токен ссылки на бронирование
	AdminID int64     // Администратор, чья сетка публикуется
	Month   time.Time // Первое число запрашиваемого месяца
}

// SlotOption свободный интервал, доступный для выбора
type SlotOption struct {
	Start types.TimeString
	End   types.TimeString
}

// PlannerDay день в ответе планировщика
type PlannerDay struct {
	Date       time.Time
	Selectable bool         // Дата пригодна для записи
	Slots      []SlotOption // Свободные слоты (только для пригодных дат)
}

// Response модель ответа планировщика
type Response struct {
	TicketNumber string    // Тикет, к которому привязана ссылка
	ExpiresAt    time.Time // Срок действия ссылки
	Days         []PlannerDay
}
