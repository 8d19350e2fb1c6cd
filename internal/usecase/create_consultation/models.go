package create_consultation

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// Request модель запроса на создание консультации
type Request struct {
	Token     string                  // Токен ссылки на бронирование
	AdminID   int64                   // Администратор, чья сетка публикуется
	Date      time.Time               // Дата консультации (без времени)
	StartTime types.TimeString        // Начало выбранного слота
	Mode      domain.ConsultationMode // Формат: online или in_person
}

// Response модель ответа с созданной консультацией
type Response struct {
	EventID      string                  // ID события в календаре
	TicketNumber string                  // Тикет, к которому привязана консультация
	Date         time.Time               // Дата консультации
	StartTime    types.TimeString        // Начало слота
	EndTime      types.TimeString        // Конец слота
	Mode         domain.ConsultationMode // Формат консультации
}
