package save_availability

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

// Handle PUT /api/v1/admins/{adminId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := strconv.ParseInt(mux.Vars(r)["adminId"], 10, 64)
	if err != nil || adminID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	var req SaveAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admins/{adminId}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(adminID)
	if err != nil {
		h.logger.Warn("PUT /admins/{adminId}/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SaveMonth(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidConfig):
			handlers.RespondBadRequest(w, msgInvalidConfig)
		default:
			h.logger.Error("PUT /admins/{adminId}/availability - admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admins/{adminId}/availability - Saved: admin_id=%d, days=%d", adminID, len(req.Days))
	w.WriteHeader(http.StatusNoContent)
}
