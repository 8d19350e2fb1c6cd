package update_slot_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	availabilityService "github.com/m04kA/IRS-ConsultationService/internal/service/availability"
)

const (
	msgInvalidAdminID     = "некорректный ID администратора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidConfig      = "некорректная конфигурация слотов"
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

// Handle PUT /api/v1/admins/{adminId}/slot-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := strconv.ParseInt(mux.Vars(r)["adminId"], 10, 64)
	if err != nil || adminID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	var req UpdateSlotConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admins/{adminId}/slot-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	payload, err := req.ToServicePayload()
	if err != nil {
		h.logger.Warn("PUT /admins/{adminId}/slot-config - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	state, err := h.service.SaveConfig(r.Context(), adminID, payload)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidConfig):
			h.logger.Warn("PUT /admins/{adminId}/slot-config - Invalid config: admin_id=%d, error=%v", adminID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)
		default:
			h.logger.Error("PUT /admins/{adminId}/slot-config - admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admins/{adminId}/slot-config - Saved: admin_id=%d", adminID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceState(state))
}
