package slots

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request входные данные генерации слотов
type Request struct {
	Schedule        *domain.BusinessSchedule
	Date            types.Date // календарная дата в часовом поясе бизнеса
	AppointmentType *domain.AppointmentType
	ViewerTimezone  string            // пустая строка - часовой пояс бизнеса
	Booked          []domain.Interval // уже занятые интервалы
	Now             time.Time         // нулевое значение отключает отсечение по времени
}

// Generator перечисляет время начала записи внутри часов работы на дату
type Generator struct {
	resolver  IntervalResolver
	converter Converter
	minNotice time.Duration
	recorder  Recorder
}

// NewGenerator создает генератор. minNotice - минимальное время до начала записи, recorder может быть nil.
func NewGenerator(resolver IntervalResolver, converter Converter, minNotice time.Duration, recorder Recorder) *Generator {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Generator{
		resolver:  resolver,
		converter: converter,
		minNotice: minNotice,
		recorder:  recorder,
	}
}

// Generate возвращает слоты в хронологическом порядке. Пустой результат не является ошибкой.
//
// Каждый интервал работы проходится с шагом duration+bufferBefore+bufferAfter от его начала;
// кандидат допустим, если start+step <= конец интервала. Кандидаты, чей [start, start+step)
// пересекается с занятым интервалом или начинается раньше Now+minNotice, отбрасываются.
func (g *Generator) Generate(req *Request) ([]domain.ResolvedSlot, error) {
	if req.Schedule == nil {
		return nil, fmt.Errorf("slots: schedule is required")
	}
	if err := validateAppointmentType(req.AppointmentType, req.Schedule.BusinessID); err != nil {
		return nil, err
	}

	displayTz := req.ViewerTimezone
	if displayTz == "" {
		displayTz = req.Schedule.Timezone
	}
	displayLoc, err := g.converter.Location(displayTz)
	if err != nil {
		return nil, err
	}

	intervals, decision, err := g.resolver.OpenIntervals(req.Schedule, req.Date, req.ViewerTimezone, &req.AppointmentType.ID)
	if err != nil {
		return nil, err
	}
	if !decision.Available || len(intervals) == 0 {
		g.recorder.ObserveGeneratedSlots(0)
		return []domain.ResolvedSlot{}, nil
	}

	step := time.Duration(req.AppointmentType.SlotStepMinutes()) * time.Minute

	var cutoff time.Time
	if !req.Now.IsZero() {
		cutoff = req.Now.Add(g.minNotice)
	}

	result := make([]domain.ResolvedSlot, 0)
	for _, iv := range intervals {
		start, err := g.converter.Instant(req.Date, iv.Start, req.Schedule.Timezone)
		if err != nil {
			return nil, err
		}
		end, err := g.converter.Instant(req.Date, iv.End, req.Schedule.Timezone)
		if err != nil {
			return nil, err
		}

		for candidate := start; !candidate.Add(step).After(end); candidate = candidate.Add(step) {
			if !cutoff.IsZero() && candidate.Before(cutoff) {
				continue
			}
			occupied := domain.Interval{Start: candidate, End: candidate.Add(step)}
			if collides(occupied, req.Booked) {
				continue
			}
			result = append(result, resolve(occupied, displayLoc))
		}
	}

	result = sortAndDedupe(result)
	g.recorder.ObserveGeneratedSlots(len(result))

	return result, nil
}

func validateAppointmentType(at *domain.AppointmentType, businessID int64) error {
	if at == nil {
		return fmt.Errorf("%w: appointment type is required", ErrInvalidAppointmentType)
	}
	if at.BusinessID != businessID {
		return fmt.Errorf("%w: appointment type id=%d belongs to business id=%d", ErrInvalidAppointmentType, at.ID, at.BusinessID)
	}
	if !at.IsActive {
		return fmt.Errorf("%w: appointment type id=%d is inactive", ErrInvalidAppointmentType, at.ID)
	}
	if at.DurationMinutes <= 0 || at.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: duration %d must be in [1, %d]", ErrInvalidAppointmentType, at.DurationMinutes, domain.MaxDurationMinutes)
	}
	if at.BufferBeforeMinutes < 0 || at.BufferBeforeMinutes > domain.MaxBufferMinutes ||
		at.BufferAfterMinutes < 0 || at.BufferAfterMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffers %d/%d must be in [0, %d]", ErrInvalidAppointmentType,
			at.BufferBeforeMinutes, at.BufferAfterMinutes, domain.MaxBufferMinutes)
	}
	return nil
}

// collides проверяет пересечение полуоткрытых интервалов: смежные интервалы не пересекаются
func collides(slot domain.Interval, booked []domain.Interval) bool {
	for _, b := range booked {
		if b.Overlaps(slot.Start, slot.End) {
			return true
		}
	}
	return false
}

func resolve(occupied domain.Interval, loc *time.Location) domain.ResolvedSlot {
	local := occupied.Start.In(loc)
	return domain.ResolvedSlot{
		StartInstant: occupied.Start,
		EndInstant:   occupied.End,
		LocalDate:    types.DateOf(local),
		LocalTime:    types.NewTimeString(local),
		DisplayLocal: local.Format(domain.DisplayFormat),
	}
}

func sortAndDedupe(slots []domain.ResolvedSlot) []domain.ResolvedSlot {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartInstant.Before(slots[j].StartInstant)
	})

	out := slots[:0]
	for i, s := range slots {
		if i > 0 && s.StartInstant.Equal(out[len(out)-1].StartInstant) {
			continue
		}
		out = append(out, s)
	}
	return out
}
