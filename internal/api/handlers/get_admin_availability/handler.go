package get_admin_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/IRS-ConsultationService/internal/api/handlers"
	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	getAdminAvailability "github.com/m04kA/IRS-ConsultationService/internal/usecase/get_admin_availability"
)

const (
	msgInvalidAdminID = "некорректный ID администратора"
	msgInvalidMonth   = "некорректный параметр month, ожидается YYYY-MM"
)

type Handler struct {
	useCase GetAdminAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAdminAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admins/{adminId}/availability?month=YYYY-MM
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

	result, err := h.useCase.Execute(r.Context(), &getAdminAvailability.Request{
		AdminID: adminID,
		Month:   month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAdminAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidMonth)
		default:
			h.logger.Error("GET /admins/{adminId}/availability - admin_id=%d, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
