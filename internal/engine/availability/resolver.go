package availability

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/blocked"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/exceptions"
	"github.com/m04kA/SMC-AvailabilityService/internal/engine/weekly"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Config параметры резолвера
type Config struct {
	// DefaultOpenTime и DefaultCloseTime - часы работы для дня недели без записей
	DefaultOpenTime  types.TimeString
	DefaultCloseTime types.TimeString
	MaxHorizonDays   int
	MaxCalendarDays  int
	CalendarWorkers  int
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		DefaultOpenTime:  "09:00",
		DefaultCloseTime: "18:00",
		MaxHorizonDays:   domain.MaxHorizonDays,
		MaxCalendarDays:  domain.MaxCalendarDays,
		CalendarWorkers:  8,
	}
}

// Resolver решает, доступна ли дата для записи, по фиксированному каскаду правил:
//  1. custom_hours / special_availability на дату - доступна
//  2. closed_months с тем же (month, year) - недоступна
//  3. пересечение с блокировкой в опорной зоне - недоступна
//  4. unavailable на дату - недоступна
//  5. недельное расписание (нет записей - доступна)
//
// Resolver не хранит состояния между вызовами и безопасен для конкурентного использования.
type Resolver struct {
	converter Converter
	cfg       Config
	logger    Logger
	recorder  Recorder
}

// NewResolver создает резолвер. recorder может быть nil.
func NewResolver(converter Converter, cfg Config, logger Logger, recorder Recorder) *Resolver {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if cfg.CalendarWorkers <= 0 {
		cfg.CalendarWorkers = 1
	}
	return &Resolver{
		converter: converter,
		cfg:       cfg,
		logger:    logger,
		recorder:  recorder,
	}
}

// compiled проиндексированные записи одного бизнеса
type compiled struct {
	schedule *domain.BusinessSchedule
	weekly   *weekly.Model
	overlay  *exceptions.Overlay
	blocked  *blocked.Filter
}

// Resolve возвращает решение по дате вместе с правилом, которое его приняло.
// viewerTz опционален: пустая строка означает часовой пояс бизнеса.
func (r *Resolver) Resolve(schedule *domain.BusinessSchedule, date types.Date, viewerTz string) (Decision, error) {
	c, err := r.compile(schedule)
	if err != nil {
		return Decision{}, err
	}
	refTz, err := r.referenceTimezone(schedule, viewerTz)
	if err != nil {
		return Decision{}, err
	}
	return r.decide(c, date, refTz)
}

// IsDateAvailable возвращает true, если на дату можно записаться
func (r *Resolver) IsDateAvailable(schedule *domain.BusinessSchedule, date types.Date, viewerTz string) (bool, error) {
	decision, err := r.Resolve(schedule, date, viewerTz)
	if err != nil {
		return false, err
	}
	return decision.Available, nil
}

// NextAvailableDate ищет первую доступную дату в [from, from+horizonDays).
// horizonDays <= 0 означает domain.DefaultHorizonDays. Второе значение false - дата не найдена.
func (r *Resolver) NextAvailableDate(schedule *domain.BusinessSchedule, from types.Date, viewerTz string, horizonDays int) (types.Date, bool, error) {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	if horizonDays > r.cfg.MaxHorizonDays {
		return types.Date{}, false, fmt.Errorf("%w: %d days exceeds limit %d", ErrInvalidHorizon, horizonDays, r.cfg.MaxHorizonDays)
	}

	c, err := r.compile(schedule)
	if err != nil {
		return types.Date{}, false, err
	}
	refTz, err := r.referenceTimezone(schedule, viewerTz)
	if err != nil {
		return types.Date{}, false, err
	}

	for i := 0; i < horizonDays; i++ {
		date := from.AddDays(i)
		decision, err := r.decide(c, date, refTz)
		if err != nil {
			return types.Date{}, false, err
		}
		if decision.Available {
			return date, true, nil
		}
	}

	return types.Date{}, false, nil
}

// Calendar разрешает days дат начиная с from. Даты вычисляются независимо и параллельно,
// результат i соответствует дате from+i. Любая ошибка отменяет весь календарь:
// дата не показывается доступной, если ее не удалось разрешить.
func (r *Resolver) Calendar(ctx context.Context, schedule *domain.BusinessSchedule, from types.Date, days int, viewerTz string) ([]Decision, error) {
	if days <= 0 || days > r.cfg.MaxCalendarDays {
		return nil, fmt.Errorf("%w: calendar length %d must be in [1, %d]", ErrInvalidHorizon, days, r.cfg.MaxCalendarDays)
	}

	c, err := r.compile(schedule)
	if err != nil {
		return nil, err
	}
	refTz, err := r.referenceTimezone(schedule, viewerTz)
	if err != nil {
		return nil, err
	}

	out := make([]Decision, days)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.CalendarWorkers)

	for i := 0; i < days; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decision, err := r.decide(c, from.AddDays(i), refTz)
			if err != nil {
				return err
			}
			out[i] = decision
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenIntervals разрешает дату тем же каскадом, но возвращает применимые часы работы
// в часовом поясе бизнеса: часы исключений custom_hours/special_availability, иначе недельные слоты,
// иначе (нет записей на день недели) часы по умолчанию. Для недоступной даты интервалов нет.
func (r *Resolver) OpenIntervals(schedule *domain.BusinessSchedule, date types.Date, viewerTz string, appointmentTypeID *int64) ([]domain.LocalInterval, Decision, error) {
	c, err := r.compile(schedule)
	if err != nil {
		return nil, Decision{}, err
	}
	refTz, err := r.referenceTimezone(schedule, viewerTz)
	if err != nil {
		return nil, Decision{}, err
	}

	decision, err := r.decide(c, date, refTz)
	if err != nil {
		return nil, Decision{}, err
	}
	if !decision.Available {
		return nil, decision, nil
	}

	switch decision.Rule {
	case RuleOverride:
		return r.overrideIntervals(c, date, appointmentTypeID), decision, nil
	case RuleWeeklyDefault:
		return []domain.LocalInterval{{Start: r.cfg.DefaultOpenTime, End: r.cfg.DefaultCloseTime}}, decision, nil
	default:
		return c.weekly.SlotsFor(date.Weekday()), decision, nil
	}
}

func (r *Resolver) decide(c *compiled, date types.Date, refTz string) (Decision, error) {
	decision := Decision{Date: date}

	switch {
	case c.overlay.HasOverride(date):
		decision.Available, decision.Rule = true, RuleOverride

	case c.overlay.IsClosedMonth(date):
		decision.Available, decision.Rule = false, RuleClosedMonth

	default:
		isBlocked, err := c.blocked.IsBlocked(date, refTz)
		if err != nil {
			return Decision{}, fmt.Errorf("availability: blocked ranges for %s: %w", date, err)
		}

		switch {
		case isBlocked:
			decision.Available, decision.Rule = false, RuleBlockedRange
		case c.overlay.IsUnavailable(date):
			decision.Available, decision.Rule = false, RuleUnavailable
		default:
			switch c.weekly.State(date.Weekday()) {
			case weekly.DayNoRecords:
				decision.Available, decision.Rule = true, RuleWeeklyDefault
			case weekly.DayOpen:
				decision.Available, decision.Rule = true, RuleWeekly
			default:
				decision.Available, decision.Rule = false, RuleWeekly
			}
		}
	}

	r.recorder.ObserveDecision(string(decision.Rule), decision.Available)
	return decision, nil
}

func (r *Resolver) overrideIntervals(c *compiled, date types.Date, appointmentTypeID *int64) []domain.LocalInterval {
	var intervals []domain.LocalInterval
	for _, ex := range c.overlay.Overrides(date, appointmentTypeID) {
		if !ex.HasHours() {
			continue
		}
		start, end := *ex.StartTime, *ex.EndTime
		if start.Validate() != nil || end.Validate() != nil || !start.IsBefore(end) {
			r.logger.Warn("availability: %s exception id=%d on %s has invalid hours %s-%s, skipped",
				ex.Type, ex.ID, date, start, end)
			continue
		}
		intervals = append(intervals, domain.LocalInterval{Start: start, End: end})
	}
	return mergeIntervals(intervals)
}

func (r *Resolver) compile(schedule *domain.BusinessSchedule) (*compiled, error) {
	if schedule == nil {
		return nil, fmt.Errorf("%w: schedule is nil", ErrInvalidSchedule)
	}
	if _, err := r.converter.Location(schedule.Timezone); err != nil {
		return nil, fmt.Errorf("business id=%d timezone: %w", schedule.BusinessID, err)
	}

	weeklyModel, err := weekly.NewModel(schedule.BusinessID, schedule.WeeklySlots)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}
	overlay, err := exceptions.NewOverlay(schedule.BusinessID, schedule.Exceptions, r.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}

	return &compiled{
		schedule: schedule,
		weekly:   weeklyModel,
		overlay:  overlay,
		blocked:  blocked.NewFilter(schedule.BusinessID, schedule.BlockedRanges, r.converter),
	}, nil
}

// referenceTimezone возвращает зону, в которой дата понимается как полные сутки:
// зона зрителя, если задана, иначе зона бизнеса
func (r *Resolver) referenceTimezone(schedule *domain.BusinessSchedule, viewerTz string) (string, error) {
	if viewerTz == "" {
		return schedule.Timezone, nil
	}
	if _, err := r.converter.Location(viewerTz); err != nil {
		return "", fmt.Errorf("viewer timezone: %w", err)
	}
	return viewerTz, nil
}

// mergeIntervals сортирует интервалы и объединяет пересекающиеся.
// Смежные интервалы остаются раздельными, как смены недельного расписания.
func mergeIntervals(intervals []domain.LocalInterval) []domain.LocalInterval {
	if len(intervals) < 2 {
		return intervals
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.IsBefore(intervals[j].Start)
	})

	merged := []domain.LocalInterval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if iv.Start.IsBefore(last.End) {
			if iv.End.IsAfter(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
