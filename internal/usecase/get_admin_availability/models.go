package get_admin_availability

import (
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
)

// Request модель запроса месячной доступности администратора
type Request struct {
	AdminID int64     // ID администратора
	Month   time.Time // Первое число запрашиваемого месяца
}

// Response модель ответа: конфигурация и дни месяца с пересчитанными слотами
type Response struct {
	Config *models.ConfigState
	Days   []models.DayState
}
