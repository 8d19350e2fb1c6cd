package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/IRS-ConsultationService/internal/domain"
	"github.com/m04kA/IRS-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/IRS-ConsultationService/pkg/psqlbuilder"
	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

// Repository репозиторий для работы с доступностью консультаций
// Хранит дни (списки слотов) и конфигурацию слотов администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// slotRecord персистентная форма слота
// Производное состояние (booked, eventTitle) в БД не хранится:
// оно пересчитывается из событий календаря при каждом чтении
type slotRecord struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Custom    bool   `json:"custom,omitempty"`
}

// GetConfig получает конфигурацию слотов администратора
func (r *Repository) GetConfig(ctx context.Context, adminID int64) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"admin_id",
		"work_start",
		"work_end",
		"lunch_start",
		"lunch_end",
		"slot_duration_minutes",
		"created_at",
		"updated_at",
	).
		From("slot_configs").
		Where(squirrel.Eq{"admin_id": adminID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.AvailabilityConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.AdminID,
		&cfg.WorkStart,
		&cfg.WorkEnd,
		&cfg.LunchStart,
		&cfg.LunchEnd,
		&cfg.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfig - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// UpsertConfig создает или обновляет конфигурацию слотов администратора
func (r *Repository) UpsertConfig(ctx context.Context, cfg *domain.AvailabilityConfig) (*domain.AvailabilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_configs").
		Columns(
			"admin_id",
			"work_start",
			"work_end",
			"lunch_start",
			"lunch_end",
			"slot_duration_minutes",
		).
		Values(
			cfg.AdminID,
			cfg.WorkStart,
			cfg.WorkEnd,
			cfg.LunchStart,
			cfg.LunchEnd,
			cfg.SlotDurationMinutes,
		).
		Suffix(`ON CONFLICT (admin_id) DO UPDATE SET
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: UpsertConfig - execute upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// GetMonthDays получает сохранённые дни администратора за период [from, to]
// Дни без записи в БД отсутствуют в результате - для них действуют
// сгенерированные значения по умолчанию
func (r *Repository) GetMonthDays(ctx context.Context, adminID int64, from, to time.Time) ([]domain.DaySlots, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"date",
		"slots",
		"customized",
	).
		From("availability_days").
		Where(squirrel.Eq{"admin_id": adminID}).
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMonthDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMonthDays - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.DaySlots, 0)
	for rows.Next() {
		var (
			date       time.Time
			rawSlots   []byte
			customized bool
		)
		if err := rows.Scan(&date, &rawSlots, &customized); err != nil {
			return nil, fmt.Errorf("%w: GetMonthDays - scan day: %v", ErrScanRow, err)
		}

		slots, err := unmarshalSlots(rawSlots)
		if err != nil {
			return nil, err
		}

		days = append(days, domain.DaySlots{
			Date:       date,
			Slots:      slots,
			Customized: customized,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMonthDays - rows error: %v", ErrExecQuery, err)
	}

	return days, nil
}

// UpsertDay создает или обновляет один день администратора
// Сохраняется только персистентная форма слотов (start/end/available/custom)
func (r *Repository) UpsertDay(ctx context.Context, adminID int64, day *domain.DaySlots) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rawSlots, err := marshalSlots(day.Slots)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert("availability_days").
		Columns(
			"admin_id",
			"date",
			"slots",
			"customized",
		).
		Values(
			adminID,
			day.Date,
			rawSlots,
			day.Customized,
		).
		Suffix(`ON CONFLICT (admin_id, date) DO UPDATE SET
			slots = EXCLUDED.slots,
			customized = EXCLUDED.customized,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertDay - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertDay - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpsertDays сохраняет набор дней администратора
// Атомарность обеспечивает вызывающая сторона, передавая транзакцию в контексте
func (r *Repository) UpsertDays(ctx context.Context, adminID int64, days []domain.DaySlots) error {
	for i := range days {
		if err := r.UpsertDay(ctx, adminID, &days[i]); err != nil {
			return err
		}
	}
	return nil
}

func marshalSlots(slots []domain.Slot) ([]byte, error) {
	records := make([]slotRecord, len(slots))
	for i, s := range slots {
		records[i] = slotRecord{
			Start:     s.Start.String(),
			End:       s.End.String(),
			Available: s.Available,
			Custom:    s.Custom,
		}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalSlots, err)
	}
	return raw, nil
}

func unmarshalSlots(raw []byte) ([]domain.Slot, error) {
	var records []slotRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmarshalSlots, err)
	}

	slots := make([]domain.Slot, len(records))
	for i, rec := range records {
		slots[i] = domain.Slot{
			Start:     types.TimeString(rec.Start),
			End:       types.TimeString(rec.End),
			Available: rec.Available,
			Custom:    rec.Custom,
		}
	}
	return slots, nil
}
