package delete_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityService "github.com/m04kA/IRS-ConsultationService/internal/service/availability"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

const (
	msgInvalidAdminID = "некорректный ID администратора"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime    = "некорректный формат времени, ожидается HH:MM"
	msgSlotNotFound   = "слот не найден"
	msgSlotBooked     = "слот занят консультацией и не может быть удалён"
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

// Handle DELETE /api/v1/admins/{adminId}/availability/days/{date}/slots/{start}
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

	start, err := types.NewTimeStringFromString(vars["start"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	day, err := h.service.DeleteSlot(r.Context(), adminID, date, start)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, availabilityService.ErrSlotBooked):
			h.logger.Warn("DELETE .../slots/{start} - Booked: admin_id=%d, date=%s, start=%s",
				adminID, vars["date"], vars["start"])
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)
		default:
			h.logger.Error("DELETE .../slots/{start} - admin_id=%d, date=%s, error=%v",
				adminID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE .../slots/{start} - Deleted: admin_id=%d, date=%s, start=%s",
		adminID, vars["date"], vars["start"])
	handlers.RespondJSON(w, http.StatusOK, FromServiceDay(day))
}
