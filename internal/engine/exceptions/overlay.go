package exceptions

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type dateEntry struct {
	overrides   []domain.AvailabilityException
	unavailable bool
}

// Overlay индекс исключений одного бизнеса по датам
type Overlay struct {
	byDate       map[types.Date]*dateEntry
	closedMonths []ClosedMonth
}

// NewOverlay индексирует исключения бизнеса businessID. Записи других бизнесов игнорируются.
// Исключение closed_months с битым customSchedule логируется и пропускается,
// чтобы ошибка разбора не закрыла целый месяц.
func NewOverlay(businessID int64, exceptions []domain.AvailabilityException, logger Logger) (*Overlay, error) {
	o := &Overlay{byDate: make(map[types.Date]*dateEntry)}

	for _, ex := range exceptions {
		if ex.BusinessID != businessID {
			continue
		}

		switch ex.Type {
		case domain.ExceptionCustomHours, domain.ExceptionSpecialAvailability:
			if !ex.HasHours() {
				logger.Warn("exceptions: %s exception id=%d on %s has no hours, date is opened without intervals",
					ex.Type, ex.ID, ex.Date)
			}
			entry := o.entry(ex.Date)
			entry.overrides = append(entry.overrides, ex)

		case domain.ExceptionUnavailable:
			o.entry(ex.Date).unavailable = true

		case domain.ExceptionClosedMonths:
			month, err := ParseClosedMonth(ex.CustomSchedule)
			if err != nil {
				logger.Warn("exceptions: closed_months exception id=%d business=%d ignored: %v", ex.ID, businessID, err)
				continue
			}
			o.closedMonths = append(o.closedMonths, month)

		default:
			return nil, fmt.Errorf("%w: %q (exception id=%d)", ErrUnknownExceptionType, ex.Type, ex.ID)
		}
	}

	return o, nil
}

// HasOverride возвращает true, если на дату есть custom_hours или special_availability
func (o *Overlay) HasOverride(date types.Date) bool {
	entry, ok := o.byDate[date]
	return ok && len(entry.overrides) > 0
}

// Overrides возвращает исключения custom_hours/special_availability на дату,
// применимые к типу записи appointmentTypeID (nil - любой тип)
func (o *Overlay) Overrides(date types.Date, appointmentTypeID *int64) []domain.AvailabilityException {
	entry, ok := o.byDate[date]
	if !ok {
		return nil
	}
	out := make([]domain.AvailabilityException, 0, len(entry.overrides))
	for _, ex := range entry.overrides {
		if ex.AppliesTo(appointmentTypeID) {
			out = append(out, ex)
		}
	}
	return out
}

// IsClosedMonth возвращает true, если дата попадает в месяц из исключения closed_months.
// Дата самого исключения не важна - совпадение только по (month, year) из customSchedule.
func (o *Overlay) IsClosedMonth(date types.Date) bool {
	for _, month := range o.closedMonths {
		if month.Contains(date) {
			return true
		}
	}
	return false
}

// IsUnavailable возвращает true, если на дату есть исключение unavailable
func (o *Overlay) IsUnavailable(date types.Date) bool {
	entry, ok := o.byDate[date]
	return ok && entry.unavailable
}

func (o *Overlay) entry(date types.Date) *dateEntry {
	entry, ok := o.byDate[date]
	if !ok {
		entry = &dateEntry{}
		o.byDate[date] = entry
	}
	return entry
}
