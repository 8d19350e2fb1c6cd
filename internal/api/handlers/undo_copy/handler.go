package undo_copy

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
	msgInvalidMonth   = "некорректный параметр month, ожидается YYYY-MM"
	msgNothingToUndo  = "нет копирования для отмены"
)

// UndoResponse HTTP модель ответа отмены копирования
type UndoResponse struct {
	Restored []string `json:"restored"` // даты "YYYY-MM-DD"
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

// Handle POST /api/v1/admins/{adminId}/availability/undo?month=YYYY-MM
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

	restored, err := h.service.UndoCopy(r.Context(), adminID, month)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrNothingToUndo):
			handlers.RespondNotFound(w, msgNothingToUndo)
		default:
			h.logger.Error("POST .../availability/undo - admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := UndoResponse{Restored: make([]string, 0, len(restored))}
	for _, d := range restored {
		resp.Restored = append(resp.Restored, d.Format(domain.DateFormat))
	}

	h.logger.Info("POST .../availability/undo - Restored: admin_id=%d, days=%d", adminID, len(restored))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
