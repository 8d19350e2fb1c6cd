package apply_slot_config

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
)

const (
	msgInvalidAdminID = "некорректный ID администратора"
	msgInvalidMonth   = "некорректный параметр month, ожидается YYYY-MM"
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

// Handle POST /api/v1/admins/{adminId}/availability/apply?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, err := strconv.ParseInt(mux.Vars(r)["adminId"], 10, 64)
	if err != nil || adminID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	month, err := time.Parse(domain.MonthFormat, r.URL.Query().Get("month"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	days, err := h.service.ApplyConfig(r.Context(), adminID, month)
	if err != nil {
		h.logger.Error("POST /admins/{adminId}/availability/apply - admin_id=%d, error=%v", adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admins/{adminId}/availability/apply - Regenerated: admin_id=%d, month=%s",
		adminID, month.Format(domain.MonthFormat))
	handlers.RespondJSON(w, http.StatusOK, FromServiceDays(days))
}
