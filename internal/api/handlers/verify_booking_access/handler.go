package verify_booking_access

import (
	"errors"
	"net/http"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	grantsService "github.com/m04kA/IRS-ConsultationService/internal/service/grants"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgGrantExpired       = "срок действия ссылки на бронирование истёк"
	msgAlreadyBooked      = "по этому обращению уже есть запись на консультацию"
	msgAccessDenied       = "ссылка на бронирование недействительна"
)

type Handler struct {
	service GrantsService
	logger  Logger
}

func NewHandler(service GrantsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/verify
// Три исхода отказа различимы для клиента: истёкшая ссылка, уже
// существующая запись и недействительная ссылка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Verify(r.Context(), req.Token, req.UserID, req.TicketNumber)
	if err != nil {
		switch {
		case errors.Is(err, grantsService.ErrGrantExpired):
			h.logger.Warn("POST /booking/verify - Expired: user_id=%d, ticket=%s", req.UserID, req.TicketNumber)
			handlers.RespondError(w, http.StatusGone, msgGrantExpired)
		case errors.Is(err, grantsService.ErrAlreadyBooked):
			h.logger.Warn("POST /booking/verify - Already booked: user_id=%d, ticket=%s", req.UserID, req.TicketNumber)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBooked)
		case errors.Is(err, grantsService.ErrAccessDenied):
			h.logger.Warn("POST /booking/verify - Denied: user_id=%d, ticket=%s", req.UserID, req.TicketNumber)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("POST /booking/verify - user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/verify - Verified: user_id=%d, ticket=%s", req.UserID, req.TicketNumber)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}
