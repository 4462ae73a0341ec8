package weekly

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ErrInvalidWeeklySlot возвращается для слота с некорректными границами или пересечением
var ErrInvalidWeeklySlot = errors.New("weekly: invalid weekly availability slot")

// DayState состояние дня недели по умолчанию
type DayState int

const (
	// DayNoRecords для дня нет ни одной записи - день открыт по умолчанию
	DayNoRecords DayState = iota
	// DayOpen есть хотя бы один доступный слот
	DayOpen
	// DayClosed все записи дня помечены как недоступные
	DayClosed
)

func (s DayState) String() string {
	switch s {
	case DayNoRecords:
		return "no_records"
	case DayOpen:
		return "open"
	case DayClosed:
		return "closed"
	default:
		return fmt.Sprintf("DayState(%d)", int(s))
	}
}

type day struct {
	hasRecords bool
	open       []domain.LocalInterval // только доступные слоты, по возрастанию начала
}

// Model недельное расписание одного бизнеса по умолчанию
type Model struct {
	days [7]day
}

// NewModel индексирует слоты бизнеса businessID по дням недели.
// Записи других бизнесов игнорируются.
func NewModel(businessID int64, slots []domain.WeeklyAvailabilitySlot) (*Model, error) {
	m := &Model{}

	for _, slot := range slots {
		if slot.BusinessID != businessID {
			continue
		}
		if slot.Weekday < time.Sunday || slot.Weekday > time.Saturday {
			return nil, fmt.Errorf("%w: slot id=%d has weekday %d", ErrInvalidWeeklySlot, slot.ID, slot.Weekday)
		}

		d := &m.days[slot.Weekday]
		d.hasRecords = true

		// Недоступные записи только закрывают день, их время не важно
		if !slot.IsAvailable {
			continue
		}

		if err := validateBounds(slot); err != nil {
			return nil, err
		}
		d.open = append(d.open, domain.LocalInterval{Start: slot.StartTime, End: slot.EndTime})
	}

	for wd := range m.days {
		open := m.days[wd].open
		sort.Slice(open, func(i, j int) bool {
			return open[i].Start.IsBefore(open[j].Start)
		})
		for i := 1; i < len(open); i++ {
			if open[i].Start.IsBefore(open[i-1].End) {
				return nil, fmt.Errorf("%w: %s slots %s-%s and %s-%s overlap", ErrInvalidWeeklySlot,
					time.Weekday(wd), open[i-1].Start, open[i-1].End, open[i].Start, open[i].End)
			}
		}
	}

	return m, nil
}

// SlotsFor возвращает доступные интервалы дня недели по возрастанию начала.
// Пустой результат означает либо отсутствие записей, либо закрытый день - см. State.
func (m *Model) SlotsFor(weekday time.Weekday) []domain.LocalInterval {
	open := m.days[weekday].open
	out := make([]domain.LocalInterval, len(open))
	copy(out, open)
	return out
}

// State возвращает состояние дня недели по умолчанию
func (m *Model) State(weekday time.Weekday) DayState {
	d := m.days[weekday]
	switch {
	case !d.hasRecords:
		return DayNoRecords
	case len(d.open) > 0:
		return DayOpen
	default:
		return DayClosed
	}
}

func validateBounds(slot domain.WeeklyAvailabilitySlot) error {
	if err := slot.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot id=%d start: %v", ErrInvalidWeeklySlot, slot.ID, err)
	}
	if err := slot.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot id=%d end: %v", ErrInvalidWeeklySlot, slot.ID, err)
	}
	if slot.StartTime.IsEndOfDay() || !slot.StartTime.IsBefore(slot.EndTime) {
		return fmt.Errorf("%w: slot id=%d start %s must be before end %s",
			ErrInvalidWeeklySlot, slot.ID, slot.StartTime, slot.EndTime)
	}
	return nil
}
