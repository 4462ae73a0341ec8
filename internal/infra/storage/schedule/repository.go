package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Repository репозиторий записей доступности бизнеса (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadSchedule загружает часовой пояс бизнеса и все его записи доступности.
// Отсутствие записей не является ошибкой: пустое расписание означает "открыто по умолчанию".
func (r *Repository) LoadSchedule(ctx context.Context, businessID int64) (*domain.BusinessSchedule, error) {
	tz, err := r.GetTimezone(ctx, businessID)
	if err != nil {
		return nil, err
	}

	weekly, err := r.ListWeeklySlots(ctx, businessID)
	if err != nil {
		return nil, err
	}

	exceptions, err := r.ListExceptions(ctx, businessID)
	if err != nil {
		return nil, err
	}

	blocked, err := r.ListBlockedRanges(ctx, businessID)
	if err != nil {
		return nil, err
	}

	return &domain.BusinessSchedule{
		BusinessID:    businessID,
		Timezone:      tz,
		WeeklySlots:   weekly,
		Exceptions:    exceptions,
		BlockedRanges: blocked,
	}, nil
}

// GetTimezone получает IANA часовой пояс бизнеса
func (r *Repository) GetTimezone(ctx context.Context, businessID int64) (string, error) {
	query, args, err := timezoneQuery(businessID)
	if err != nil {
		return "", fmt.Errorf("%w: GetTimezone - build select query: %v", ErrBuildQuery, err)
	}

	var tz string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&tz)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrBusinessNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetTimezone - scan timezone: %v", ErrScanRow, err)
	}

	return tz, nil
}

// ListWeeklySlots получает недельное расписание бизнеса
func (r *Repository) ListWeeklySlots(ctx context.Context, businessID int64) ([]domain.WeeklyAvailabilitySlot, error) {
	query, args, err := weeklyQuery(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklySlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWeeklySlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.WeeklyAvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.WeeklyAvailabilitySlot
		var weekday int

		if err := rows.Scan(
			&slot.ID,
			&slot.BusinessID,
			&weekday,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("%w: ListWeeklySlots - scan row: %v", ErrScanRow, err)
		}

		slot.Weekday = time.Weekday(weekday)
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWeeklySlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ListExceptions получает исключения бизнеса по датам
func (r *Repository) ListExceptions(ctx context.Context, businessID int64) ([]domain.AvailabilityException, error) {
	query, args, err := exceptionsQuery(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.AvailabilityException, 0)
	for rows.Next() {
		var ex domain.AvailabilityException
		var appointmentTypeID sql.NullInt64
		var startTime, endTime *types.TimeString
		var customSchedule []byte

		if err := rows.Scan(
			&ex.ID,
			&ex.BusinessID,
			&ex.Date,
			&ex.Type,
			&appointmentTypeID,
			&startTime,
			&endTime,
			&ex.Reason,
			&customSchedule,
		); err != nil {
			return nil, fmt.Errorf("%w: ListExceptions - scan row: %v", ErrScanRow, err)
		}

		if appointmentTypeID.Valid {
			ex.AppointmentTypeID = &appointmentTypeID.Int64
		}
		ex.StartTime = startTime
		ex.EndTime = endTime
		ex.CustomSchedule = customSchedule

		exceptions = append(exceptions, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListExceptions - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// ListBlockedRanges получает заблокированные периоды бизнеса
func (r *Repository) ListBlockedRanges(ctx context.Context, businessID int64) ([]domain.BlockedDateRange, error) {
	query, args, err := blockedRangesQuery(businessID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedRanges - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedRanges - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]domain.BlockedDateRange, 0)
	for rows.Next() {
		var br domain.BlockedDateRange

		if err := rows.Scan(
			&br.ID,
			&br.BusinessID,
			&br.StartDate,
			&br.EndDate,
			&br.Reason,
			&br.IsAllDay,
		); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedRanges - scan row: %v", ErrScanRow, err)
		}

		ranges = append(ranges, br)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedRanges - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}
