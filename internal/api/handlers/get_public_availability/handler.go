package get_public_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
)

const msgInvalidMonth = "некорректный параметр month, ожидается YYYY-MM"

type Handler struct {
	service AvailabilityService
	adminID int64
	logger  Logger
}

// NewHandler создает handler публичной ленты доступности
// adminID - администратор, чья сетка публикуется
func NewHandler(service AvailabilityService, adminID int64, logger Logger) *Handler {
	return &Handler{
		service: service,
		adminID: adminID,
		logger:  logger,
	}
}

// Handle GET /api/v1/public/availability?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, err := time.Parse(domain.MonthFormat, r.URL.Query().Get("month"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	cfg, days, err := h.service.GetMonth(r.Context(), h.adminID, month)
	if err != nil {
		h.logger.Error("GET /public/availability - month=%s, error=%v",
			month.Format(domain.MonthFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceMonth(cfg, days))
}
