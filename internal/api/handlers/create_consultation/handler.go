package create_consultation

import (
	"errors"
	"net/http"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	createConsultation "github.com/m04kA/IRS-ConsultationService/internal/usecase/create_consultation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgGrantExpired       = "срок действия ссылки на бронирование истёк"
	msgAlreadyBooked      = "по этому обращению уже есть запись на консультацию"
	msgAccessDenied       = "ссылка на бронирование недействительна"
	msgSlotNotAvailable   = "выбранный слот недоступен, выберите другой"
	msgSlotConflict       = "слот уже занят, выберите другое время"
)

type Handler struct {
	useCase CreateConsultationUseCase
	adminID int64
	logger  Logger
}

// NewHandler создает handler создания консультации
// adminID - администратор, чья сетка публикуется
func NewHandler(useCase CreateConsultationUseCase, adminID int64, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		adminID: adminID,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateConsultationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/consultations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.adminID)
	if err != nil {
		h.logger.Warn("POST /booking/consultations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createConsultation.ErrSlotConflict):
			h.logger.Warn("POST /booking/consultations - Conflict: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)
		case errors.Is(err, createConsultation.ErrSlotNotAvailable):
			h.logger.Warn("POST /booking/consultations - Slot not available: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)
		case errors.Is(err, createConsultation.ErrGrantExpired):
			handlers.RespondError(w, http.StatusGone, msgGrantExpired)
		case errors.Is(err, createConsultation.ErrAlreadyBooked):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBooked)
		case errors.Is(err, createConsultation.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, createConsultation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /booking/consultations - date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/consultations - Booked: ticket=%s, event=%s, date=%s, time=%s",
		result.TicketNumber, result.EventID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
