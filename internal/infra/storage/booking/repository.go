package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository читает бронирования, которые занимают время бизнеса.
// Бронирования создает и меняет сервис бронирований, здесь они только читаются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListReserved получает активные бронирования бизнеса, пересекающиеся с [from, to).
// Отмененные и неявки время не занимают и не возвращаются.
//
// Пересечение полуоткрытое: бронирование, которое заканчивается ровно в from
// или начинается ровно в to, в результат не попадает.
func (r *Repository) ListReserved(ctx context.Context, businessID int64, from, to time.Time) ([]*domain.ReservedBooking, error) {
	query, args, err := listReservedQuery(businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReserved - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReserved - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func listReservedQuery(businessID int64, from, to time.Time) (string, []interface{}, error) {
	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	return psqlbuilder.Select(
		"id",
		"business_id",
		"appointment_type_id",
		"start_at",
		"end_at",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		Where(squirrel.Eq{"status": activeStatuses}).
		OrderBy("start_at ASC").
		ToSql()
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.ReservedBooking, error) {
	bookings := make([]*domain.ReservedBooking, 0)

	for rows.Next() {
		var booking domain.ReservedBooking

		err := rows.Scan(
			&booking.ID,
			&booking.BusinessID,
			&booking.AppointmentTypeID,
			&booking.StartAt,
			&booking.EndAt,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
