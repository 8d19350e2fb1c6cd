package update_slot

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
	msgInvalidAdminID     = "некорректный ID администратора"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidRange       = "время начала должно быть раньше времени окончания"
	msgSlotOverlap        = "слот пересекается с существующим"
	msgSlotNotFound       = "слот не найден"
	msgSlotBooked         = "слот занят консультацией и не может быть изменён"
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

// Handle PUT /api/v1/admins/{adminId}/availability/days/{date}/slots/{start}
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

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT .../slots/{start} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	newStart, err := types.NewTimeStringFromString(req.Start)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	newEnd, err := types.NewTimeStringFromString(req.End)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	day, err := h.service.UpdateSlot(r.Context(), adminID, date, start, newStart, newEnd)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrSlotNotFound):
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, availabilityService.ErrSlotBooked):
			h.logger.Warn("PUT .../slots/{start} - Booked: admin_id=%d, date=%s, start=%s",
				adminID, vars["date"], vars["start"])
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)
		case errors.Is(err, availabilityService.ErrInvalidSlotRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, availabilityService.ErrSlotOverlap):
			handlers.RespondError(w, http.StatusConflict, msgSlotOverlap)
		default:
			h.logger.Error("PUT .../slots/{start} - admin_id=%d, date=%s, error=%v",
				adminID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT .../slots/{start} - Updated: admin_id=%d, date=%s, %s -> %s-%s",
		adminID, vars["date"], vars["start"], req.Start, req.End)
	handlers.RespondJSON(w, http.StatusOK, FromServiceDay(day))
}
