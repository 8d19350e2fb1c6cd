package get_admin_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
)

// UseCase use case получения месячной сетки доступности администратора
type UseCase struct {
	availabilityService AvailabilityService
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityService AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		availabilityService: availabilityService,
		logger:              logger,
	}
}

// Execute выполняет use case
// Дни без сохранённого состояния приходят со слотами по умолчанию;
// брони и перекрытия событий уже пересчитаны по календарю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.AdminID <= 0 {
		return nil, fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	cfg, days, err := uc.availabilityService.GetMonth(ctx, req.AdminID, req.Month)
	if err != nil {
		uc.logger.Error("GetAdminAvailability: admin=%d month=%s: %v",
			req.AdminID, req.Month.Format(domain.MonthFormat), err)
		return nil, fmt.Errorf("%w: failed to load month: %v", ErrInternal, err)
	}

	return &Response{Config: cfg, Days: days}, nil
}
