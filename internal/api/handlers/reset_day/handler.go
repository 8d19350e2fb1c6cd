package reset_day

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityService "github.com/m04kA/IRS-ConsultationService/internal/service/availability"
)

const (
	msgInvalidAdminID   = "некорректный ID администратора"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayNotCustomized = "день не изменялся и не требует сброса"
	msgDayNotFound      = "день не найден в запрошенном месяце"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admins/{adminId}/availability/days/{date}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	adminID, err := strconv.ParseInt(vars["adminId"], 10, 64)
	if err != nil || adminID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day, err := h.service.ResetDay(r.Context(), adminID, date)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrDayNotCustomized):
			handlers.RespondBadRequest(w, msgDayNotCustomized)
		case errors.Is(err, availabilityService.ErrDayNotFound):
			handlers.RespondNotFound(w, msgDayNotFound)
		default:
			h.logger.Error("POST .../days/{date}/reset - admin_id=%d, date=%s, error=%v",
				adminID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST .../days/{date}/reset - Reset: admin_id=%d, date=%s", adminID, vars["date"])
	handlers.RespondJSON(w, http.StatusOK, FromServiceDay(day))
}
