package add_custom_slot

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

// Handle POST /api/v1/admins/{adminId}/availability/days/{date}/slots
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

	var req AddCustomSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST .../days/{date}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := types.NewTimeStringFromString(req.Start)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	end, err := types.NewTimeStringFromString(req.End)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	day, err := h.service.AddCustomSlot(r.Context(), adminID, date, start, end)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidSlotRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, availabilityService.ErrSlotOverlap):
			h.logger.Warn("POST .../days/{date}/slots - Overlap: admin_id=%d, date=%s, %s-%s",
				adminID, vars["date"], req.Start, req.End)
			handlers.RespondError(w, http.StatusConflict, msgSlotOverlap)
		default:
			h.logger.Error("POST .../days/{date}/slots - admin_id=%d, date=%s, error=%v",
				adminID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST .../days/{date}/slots - Added: admin_id=%d, date=%s, %s-%s",
		adminID, vars["date"], req.Start, req.End)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceDay(day))
}
