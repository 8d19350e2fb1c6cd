package availability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	availabilityRepo "github.com/m04kA/IRS-ConsultationService/internal/infra/storage/availability"
	"github.com/m04kA/IRS-ConsultationService/internal/service/availability/models"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// Service сервис управления доступностью консультаций
// Выполняет операции редактирования дней (toggle/add/edit/delete/copy/undo/
// reset/apply) и массовое сохранение месяца
//
// Снапшоты для Undo All держатся в памяти по ключу (админ, месяц):
// одновременно существует не более одного ожидающего снапшота, новое
// копирование вытесняет неиспользованный
type Service struct {
	repo           AvailabilityRepository
	calendarClient CalendarServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger

	mu        sync.Mutex
	snapshots map[string]*domain.CopyUndoSnapshot
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	repo AvailabilityRepository,
	calendarClient CalendarServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		repo:           repo,
		calendarClient: calendarClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		snapshots:      make(map[string]*domain.CopyUndoSnapshot),
	}
}

// GetMonth возвращает месяц администратора с актуальным производным
// состоянием слотов (брони и перекрытия пересчитаны по календарю)
func (s *Service) GetMonth(ctx context.Context, adminID int64, month time.Time) (*models.ConfigState, []models.DayState, error) {
	m, _, err := s.loadMonth(ctx, adminID, month)
	if err != nil {
		return nil, nil, err
	}
	return models.FromDomainConfig(m.Config), models.FromDomainDays(m.Days), nil
}

// SaveConfig сохраняет конфигурацию слотов администратора
func (s *Service) SaveConfig(ctx context.Context, adminID int64, payload *models.ConfigPayload) (*models.ConfigState, error) {
	cfg := payload.ToDomainConfig(adminID)
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("SaveConfig: validation failed for admin=%d: %v", adminID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	saved, err := s.repo.UpsertConfig(ctx, cfg)
	if err != nil {
		s.logger.Error("SaveConfig: failed to upsert config for admin=%d: %v", adminID, err)
		return nil, fmt.Errorf("%w: SaveConfig - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveConfig: config saved for admin=%d (work %s-%s, lunch %s-%s, duration %d)",
		adminID, saved.WorkStart, saved.WorkEnd, saved.LunchStart, saved.LunchEnd, saved.SlotDurationMinutes)
	return models.FromDomainConfig(saved), nil
}

// SaveMonth массово сохраняет дни месяца вместе с конфигурацией
// Операция атомарна: либо сохраняется всё, либо ничего
func (s *Service) SaveMonth(ctx context.Context, req *models.SaveMonthRequest) error {
	cfg := req.Config.ToDomainConfig(req.AdminID)
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("SaveMonth: config validation failed for admin=%d: %v", req.AdminID, err)
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	days := make([]domain.DaySlots, len(req.Days))
	for i := range req.Days {
		days[i] = req.Days[i].ToDomainDay()
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.UpsertConfig(txCtx, cfg); err != nil {
			return fmt.Errorf("%w: SaveMonth - upsert config: %v", ErrInternal, err)
		}
		if err := s.repo.UpsertDays(txCtx, req.AdminID, days); err != nil {
			return fmt.Errorf("%w: SaveMonth - upsert days: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("SaveMonth: transaction failed for admin=%d: %v", req.AdminID, err)
		return err
	}

	s.logger.Info("SaveMonth: saved %d days for admin=%d month=%s",
		len(days), req.AdminID, req.Month.Format(domain.MonthFormat))
	return nil
}

// ApplyConfig перегенерирует все дни месяца из текущей конфигурации,
// не трогая изменённые (customized) дни и дни с реальными консультациями
func (s *Service) ApplyConfig(ctx context.Context, adminID int64, month time.Time) ([]models.DayState, error) {
	m, events, err := s.loadMonth(ctx, adminID, month)
	if err != nil {
		return nil, err
	}

	m.Regenerate(events)

	if err := s.persistMonth(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("ApplyConfig: regenerated month=%s for admin=%d",
		month.Format(domain.MonthFormat), adminID)
	return models.FromDomainDays(m.Days), nil
}

// ToggleSlot переключает доступность слота
func (s *Service) ToggleSlot(ctx context.Context, adminID int64, date time.Time, start types.TimeString) (*models.DayState, error) {
	m, _, err := s.loadMonth(ctx, adminID, date)
	if err != nil {
		return nil, err
	}

	if err := m.ToggleSlot(date, start); err != nil {
		s.logger.Warn("ToggleSlot: admin=%d date=%s start=%s: %v",
			adminID, date.Format(domain.DateFormat), start, err)
		return nil, mapDomainError(err)
	}

	return s.persistDay(ctx, m, date, "ToggleSlot")
}

// AddCustomSlot добавляет ручной слот на день
func (s *Service) AddCustomSlot(ctx context.Context, adminID int64, date time.Time, start, end types.TimeString) (*models.DayState, error) {
	m, events, err := s.loadMonth(ctx, adminID, date)
	if err != nil {
		return nil, err
	}

	if err := m.AddCustomSlot(date, start, end, events); err != nil {
		s.logger.Warn("AddCustomSlot: admin=%d date=%s %s-%s: %v",
			adminID, date.Format(domain.DateFormat), start, end, err)
		return nil, mapDomainError(err)
	}

	return s.persistDay(ctx, m, date, "AddCustomSlot")
}

// UpdateSlot изменяет границы слота
func (s *Service) UpdateSlot(ctx context.Context, adminID int64, date time.Time, start, newStart, newEnd types.TimeString) (*models.DayState, error) {
	m, events, err := s.loadMonth(ctx, adminID, date)
	if err != nil {
		return nil, err
	}

	if err := m.UpdateSlot(date, start, newStart, newEnd, events); err != nil {
		s.logger.Warn("UpdateSlot: admin=%d date=%s start=%s: %v",
			adminID, date.Format(domain.DateFormat), start, err)
		return nil, mapDomainError(err)
	}

	return s.persistDay(ctx, m, date, "UpdateSlot")
}

// DeleteSlot удаляет слот
func (s *Service) DeleteSlot(ctx context.Context, adminID int64, date time.Time, start types.TimeString) (*models.DayState, error) {
	m, _, err := s.loadMonth(ctx, adminID, date)
	if err != nil {
		return nil, err
	}

	if err := m.DeleteSlot(date, start); err != nil {
		s.logger.Warn("DeleteSlot: admin=%d date=%s start=%s: %v",
			adminID, date.Format(domain.DateFormat), start, err)
		return nil, mapDomainError(err)
	}

	return s.persistDay(ctx, m, date, "DeleteSlot")
}

// CopyToWeekdays копирует слоты дня на будние дни месяца
// Перед мутацией состояние всех затронутых дат фиксируется в снапшоте;
// операция атомарна и полностью обратима через UndoCopy
func (s *Service) CopyToWeekdays(ctx context.Context, adminID int64, date time.Time) ([]time.Time, error) {
	m, events, err := s.loadMonth(ctx, adminID, date)
	if err != nil {
		return nil, err
	}

	snapshot, err := m.CopyToWeekdays(date, s.timeProvider.Now(), events)
	if err != nil {
		s.logger.Warn("CopyToWeekdays: admin=%d date=%s: %v",
			adminID, date.Format(domain.DateFormat), err)
		return nil, mapDomainError(err)
	}

	affected := make([]domain.DaySlots, 0, len(snapshot.Dates))
	for _, d := range snapshot.Dates {
		affected = append(affected, *m.Day(d))
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.repo.UpsertDays(txCtx, adminID, affected); err != nil {
			return fmt.Errorf("%w: CopyToWeekdays - upsert days: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CopyToWeekdays: transaction failed for admin=%d: %v", adminID, err)
		return nil, err
	}

	// Новое копирование вытесняет неиспользованный снапшот
	s.mu.Lock()
	s.snapshots[snapshotKey(adminID, m.Month)] = snapshot
	s.mu.Unlock()

	s.logger.Info("CopyToWeekdays: admin=%d copied %s (%d open slots) to %d weekdays",
		adminID, date.Format(domain.DateFormat), m.Day(date).OpenSlotCount(), len(snapshot.Dates))
	return snapshot.Dates, nil
}

// UndoCopy откатывает последнее копирование, восстанавливая затронутые
// даты ровно в прежнее состояние; снапшот после этого уничтожается
func (s *Service) UndoCopy(ctx context.Context, adminID int64, month time.Time) ([]time.Time, error) {
	key := snapshotKey(adminID, monthStart(month))

	s.mu.Lock()
	snapshot, ok := s.snapshots[key]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNothingToUndo
	}

	m, _, err := s.loadMonth(ctx, adminID, month)
	if err != nil {
		return nil, err
	}

	if err := m.ApplyUndo(snapshot); err != nil {
		return nil, mapDomainError(err)
	}

	restored := make([]domain.DaySlots, 0, len(snapshot.Dates))
	for _, d := range snapshot.Dates {
		restored = append(restored, *m.Day(d))
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.repo.UpsertDays(txCtx, adminID, restored); err != nil {
			return fmt.Errorf("%w: UndoCopy - upsert days: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		// Откат не удался - снапшот сохраняем, пользователь может повторить
		s.logger.Error("UndoCopy: transaction failed for admin=%d: %v", adminID, err)
		return nil, err
	}

	s.mu.Lock()
	delete(s.snapshots, key)
	s.mu.Unlock()

	s.logger.Info("UndoCopy: admin=%d restored %d days", adminID, len(snapshot.Dates))
	return snapshot.Dates, nil
}

// ResetDay возвращает изменённый день к сгенерированным значениям
func (s *Service) ResetDay(ctx context.Context, adminID int64, date time.Time) (*models.DayState, error) {
	m, events, err := s.loadMonth(ctx, adminID, date)
	if err != nil {
		return nil, err
	}

	if err := m.ResetDay(date, events); err != nil {
		s.logger.Warn("ResetDay: admin=%d date=%s: %v",
			adminID, date.Format(domain.DateFormat), err)
		return nil, mapDomainError(err)
	}

	return s.persistDay(ctx, m, date, "ResetDay")
}

// loadMonth загружает месяц администратора: конфигурацию (или значения по
// умолчанию), сохранённые дни и события календаря, после чего пересчитывает
// производное состояние слотов. Пересчёт применяется и к изменённым дням.
func (s *Service) loadMonth(ctx context.Context, adminID int64, date time.Time) (*domain.MonthAvailability, []domain.CalendarEvent, error) {
	from := monthStart(date)
	to := from.AddDate(0, 1, -1)

	cfg, err := s.repo.GetConfig(ctx, adminID)
	if err != nil && !errors.Is(err, availabilityRepo.ErrConfigNotFound) {
		s.logger.Error("loadMonth: failed to get config for admin=%d: %v", adminID, err)
		return nil, nil, fmt.Errorf("%w: loadMonth - get config: %v", ErrInternal, err)
	}
	if cfg == nil {
		cfg = domain.DefaultAvailabilityConfig(adminID)
	}

	days, err := s.repo.GetMonthDays(ctx, adminID, from, to)
	if err != nil {
		s.logger.Error("loadMonth: failed to get days for admin=%d: %v", adminID, err)
		return nil, nil, fmt.Errorf("%w: loadMonth - get days: %v", ErrInternal, err)
	}

	events, err := s.calendarClient.GetEvents(ctx, from, to, nil)
	if err != nil {
		s.logger.Error("loadMonth: failed to get events: %v", err)
		return nil, nil, fmt.Errorf("%w: loadMonth - get events: %v", ErrInternal, err)
	}

	m := domain.NewMonthAvailability(adminID, from, cfg, days)
	m.ResolveEvents(events)

	return m, events, nil
}

func (s *Service) persistDay(ctx context.Context, m *domain.MonthAvailability, date time.Time, op string) (*models.DayState, error) {
	day := m.Day(date)
	if day == nil {
		return nil, ErrDayNotFound
	}

	if err := s.repo.UpsertDay(ctx, m.AdminID, day); err != nil {
		s.logger.Error("%s: failed to persist day admin=%d date=%s: %v",
			op, m.AdminID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %s - persist day: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: admin=%d date=%s saved (%d slots, customized=%t)",
		op, m.AdminID, date.Format(domain.DateFormat), len(day.Slots), day.Customized)
	return models.FromDomainDay(day), nil
}

func (s *Service) persistMonth(ctx context.Context, m *domain.MonthAvailability) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.repo.UpsertDays(txCtx, m.AdminID, m.Days); err != nil {
			return fmt.Errorf("%w: persist month: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("persistMonth: transaction failed for admin=%d: %v", m.AdminID, err)
	}
	return err
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTimeRange):
		return fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
	case errors.Is(err, domain.ErrSlotOverlap):
		return fmt.Errorf("%w: %v", ErrSlotOverlap, err)
	case errors.Is(err, domain.ErrSlotNotFound):
		return ErrSlotNotFound
	case errors.Is(err, domain.ErrSlotBooked):
		return ErrSlotBooked
	case errors.Is(err, domain.ErrDayNotFound):
		return ErrDayNotFound
	case errors.Is(err, domain.ErrDayNotCustomized):
		return ErrDayNotCustomized
	case errors.Is(err, domain.ErrNoUndoSnapshot):
		return ErrNothingToUndo
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func snapshotKey(adminID int64, month time.Time) string {
	return fmt.Sprintf("%d:%s", adminID, month.Format(domain.MonthFormat))
}

func monthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
