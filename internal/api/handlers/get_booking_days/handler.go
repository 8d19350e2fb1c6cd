package get_booking_days

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	planBooking "github.com/m04kA/IRS-ConsultationService/internal/usecase/plan_booking"
)

const (
	msgInvalidMonth  = "некорректный параметр month, ожидается YYYY-MM"
	msgMissingToken  = "отсутствует параметр token"
	msgGrantExpired  = "срок действия ссылки на бронирование истёк"
	msgAlreadyBooked = "по этому обращению уже есть запись на консультацию"
	msgAccessDenied  = "ссылка на бронирование недействительна"
)

type Handler struct {
	useCase PlanBookingUseCase
	adminID int64
	logger  Logger
}

// NewHandler создает handler планировщика
// adminID - администратор, чья сетка публикуется
func NewHandler(useCase PlanBookingUseCase, adminID int64, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		adminID: adminID,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/days?month=YYYY-MM&token=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	month, err := time.Parse(domain.MonthFormat, r.URL.Query().Get("month"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &planBooking.Request{
		Token:   token,
		AdminID: h.adminID,
		Month:   month,
	})
	if err != nil {
		switch {
		case errors.Is(err, planBooking.ErrGrantExpired):
			handlers.RespondError(w, http.StatusGone, msgGrantExpired)
		case errors.Is(err, planBooking.ErrAlreadyBooked):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBooked)
		case errors.Is(err, planBooking.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, planBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /booking/days - month=%s, error=%v",
				month.Format(domain.MonthFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
