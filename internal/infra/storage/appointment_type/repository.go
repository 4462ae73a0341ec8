package appointment_type

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий типов записи (услуг) бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов записи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает тип записи бизнеса по ID. Неактивные типы тоже возвращаются,
// решение о них принимает генератор слотов.
func (r *Repository) GetByID(ctx context.Context, businessID, id int64) (*domain.AppointmentType, error) {
	query, args, err := getByIDQuery(businessID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var at domain.AppointmentType
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&at.ID,
		&at.BusinessID,
		&at.Name,
		&at.DurationMinutes,
		&at.BufferBeforeMinutes,
		&at.BufferAfterMinutes,
		&at.IsActive,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment type: %v", ErrScanRow, err)
	}

	return &at, nil
}

func getByIDQuery(businessID, id int64) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"business_id",
		"name",
		"duration_minutes",
		"buffer_before_minutes",
		"buffer_after_minutes",
		"is_active",
	).
		From("appointment_types").
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()
}
