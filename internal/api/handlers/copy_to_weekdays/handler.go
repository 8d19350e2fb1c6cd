package copy_to_weekdays

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
	msgInvalidAdminID = "некорректный ID администратора"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayNotFound    = "день не найден в запрошенном месяце"
)

// CopyResponse HTTP модель ответа копирования
type CopyResponse struct {
	CopiedTo []string `json:"copiedTo"` // даты "YYYY-MM-DD"
}

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

// Handle POST /api/v1/admins/{adminId}/availability/days/{date}/copy
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

	affected, err := h.service.CopyToWeekdays(r.Context(), adminID, date)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrDayNotFound):
			handlers.RespondNotFound(w, msgDayNotFound)
		default:
			h.logger.Error("POST .../days/{date}/copy - admin_id=%d, date=%s, error=%v",
				adminID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := CopyResponse{CopiedTo: make([]string, 0, len(affected))}
	for _, d := range affected {
		resp.CopiedTo = append(resp.CopiedTo, d.Format(domain.DateFormat))
	}

	h.logger.Info("POST .../days/{date}/copy - Copied: admin_id=%d, source=%s, targets=%d",
		adminID, vars["date"], len(affected))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
