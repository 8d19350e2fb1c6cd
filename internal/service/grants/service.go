package grants

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	"github.com/m04kA/IRS-ConsultationService/internal/integrations/grantservice"
)

// Service реестр сессий доступа к бронированию
// Каждая ссылка на бронирование проверяется в GrantService ровно один раз;
// дальнейшая судьба гранта (истечение, потребление) отслеживается локально
// по конечному автомату domain.GrantSession
type Service struct {
	grantClient  GrantServiceClient
	timeProvider TimeProvider
	logger       Logger

	mu       sync.RWMutex
	sessions map[string]*domain.GrantSession
}

// NewService создает новый экземпляр сервиса грантов
func NewService(grantClient GrantServiceClient, logger Logger) *Service {
	return &Service{
		grantClient:  grantClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessions:     make(map[string]*domain.GrantSession),
	}
}

// Verify проверяет ссылку на бронирование в GrantService и регистрирует
// сессию. Повторный вызов с тем же токеном возвращает текущее состояние
// сессии без обращения к GrantService.
func (s *Service) Verify(ctx context.Context, token string, userID int64, ticketNumber string) (*domain.GrantSession, error) {
	s.mu.RLock()
	existing, ok := s.sessions[token]
	s.mu.RUnlock()
	if ok {
		return s.checkUsable(existing)
	}

	session := domain.NewGrantSession(token, userID, ticketNumber)
	if !session.IsComplete() {
		// Неполный набор идентификаторов - до GrantService не доходим
		_ = session.Reject()
		s.logger.Warn("Verify: incomplete booking link rejected (user=%d)", userID)
		return nil, ErrAccessDenied
	}

	expiresAt, err := s.grantClient.Verify(ctx, token, userID, ticketNumber)
	if err != nil {
		switch {
		case errors.Is(err, grantservice.ErrGrantExpired):
			// Терминальное состояние сохраняет причину отказа:
			// повторная проверка того же токена снова вернет "истек"
			_ = session.Expire()
			s.register(session)
			return nil, ErrGrantExpired
		case errors.Is(err, grantservice.ErrAlreadyBooked):
			_ = session.MarkConsumed()
			s.register(session)
			return nil, ErrAlreadyBooked
		case errors.Is(err, grantservice.ErrAccessDenied):
			_ = session.Reject()
			s.register(session)
			s.logger.Warn("Verify: access denied for user=%d ticket=%s", userID, ticketNumber)
			return nil, ErrAccessDenied
		default:
			s.logger.Error("Verify: grant service call failed: %v", err)
			return nil, fmt.Errorf("%w: Verify - grant service: %v", ErrInternal, err)
		}
	}

	if err := session.Verify(expiresAt, s.timeProvider.Now()); err != nil {
		return nil, fmt.Errorf("%w: Verify - state transition: %v", ErrInternal, err)
	}
	s.register(session)

	if session.State == domain.GrantExpired {
		return nil, ErrGrantExpired
	}

	s.logger.Info("Verify: grant verified for user=%d ticket=%s (expires %s)",
		userID, ticketNumber, expiresAt.Format(time.RFC3339))
	return session, nil
}

// Session возвращает проверенную сессию по токену
func (s *Service) Session(token string) (*domain.GrantSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s.checkUsable(session)
}

// Consume терминально расходует грант после успешного бронирования
func (s *Service) Consume(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	if err := session.Consume(); err != nil {
		return fmt.Errorf("%w: %v", ErrGrantNotUsable, err)
	}

	s.logger.Info("Consume: grant consumed for ticket=%s", session.Grant.TicketNumber)
	return nil
}

// StartExpirySweeper запускает фоновую проверку истечения грантов
// Остановка через закрытие stopCh
func (s *Service) StartExpirySweeper(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-stopCh:
				return
			}
		}
	}()
}

func (s *Service) sweep() {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range s.sessions {
		if session.SweepExpiry(now) {
			s.logger.Info("sweep: grant expired for ticket=%s", session.Grant.TicketNumber)
		}
	}
}

func (s *Service) register(session *domain.GrantSession) {
	s.mu.Lock()
	s.sessions[session.Grant.Token] = session
	s.mu.Unlock()
}

// checkUsable транслирует терминальные состояния сессии в ошибки сервиса
func (s *Service) checkUsable(session *domain.GrantSession) (*domain.GrantSession, error) {
	s.mu.Lock()
	session.SweepExpiry(s.timeProvider.Now())
	s.mu.Unlock()

	switch session.State {
	case domain.GrantVerified:
		return session, nil
	case domain.GrantExpired:
		return nil, ErrGrantExpired
	case domain.GrantConsumed:
		return nil, ErrAlreadyBooked
	default:
		return nil, ErrAccessDenied
	}
}
